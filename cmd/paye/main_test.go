package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/naijatax/paye/internal/domain"
)

// execute runs the root command with args after resetting every flag, since
// cobra keeps flag values between executions
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Value.Type() == "stringSlice" {
			return
		}
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "paye", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("rules"))
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "calculate")

	_, err = execute(t, "invalid-command")
	assert.Error(t, err)

	_, err = execute(t, "--invalid-flag")
	assert.Error(t, err)
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{"calculate", "validate", "bands", "compare", "gross-up", "serve", "tui", "version"}

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "command %q should be registered", name)
	}
}

func TestCalculate_Flags(t *testing.T) {
	out, err := execute(t, "calculate", "--monthly", "₦500,000", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "896000")
	assert.Contains(t, out, `"name": "cli"`)

	out, err = execute(t, "calculate", "--gross", "6000000", "--category", "self-employed")
	require.NoError(t, err)
	assert.Contains(t, out, "₦896,000")
	assert.Contains(t, out, "Self-Employed")
}

func TestCalculate_File(t *testing.T) {
	out, err := execute(t, "calculate", "testdata/declarations.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "SALARIED (Employed)")
	assert.Contains(t, out, "FREELANCER (Self-Employed)")
	assert.Contains(t, out, "DISCLAIMER")

	out, err = execute(t, "calculate", "testdata/declarations.yaml", "--name", "freelancer", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "freelancer")
	assert.NotContains(t, out, "salaried")

	_, err = execute(t, "calculate", "testdata/declarations.yaml", "--name", "nobody")
	assert.ErrorIs(t, err, domain.ErrDeclarationNotFound)
}

func TestCalculate_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tax.html")

	_, err := execute(t, "calculate", "--monthly", "400000", "--format", "html", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<html")
}

func TestCalculate_Errors(t *testing.T) {
	_, err := execute(t, "calculate")
	assert.ErrorContains(t, err, "provide an input file")

	_, err = execute(t, "calculate", "--monthly", "1000", "--format", "pdf")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = execute(t, "calculate", "--monthly", "1000", "--category", "retired")
	assert.ErrorContains(t, err, "unknown category")

	_, err = execute(t, "calculate", "--monthly", "1000", "--pension-rate", "lots")
	assert.ErrorContains(t, err, "invalid --pension-rate")

	_, err = execute(t, "calculate", "--monthly", "1000", "--rules", "testdata/missing.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	out, err := execute(t, "validate", "testdata/declarations.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (2 declaration(s))")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("declarations:\n  - name: a\n    monthly_salary: -1\n"), 0o600))
	_, err = execute(t, "validate", bad)
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}

func TestBands(t *testing.T) {
	out, err := execute(t, "bands")
	require.NoError(t, err)
	assert.Contains(t, out, "Nigeria Tax Act 2025")
	assert.Contains(t, out, "Balance (Top Rate)")
	assert.Contains(t, out, "Consolidated Relief Allowance")

	out, err = execute(t, "bands", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"unbounded"`)

	out, err = execute(t, "bands", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "width: unbounded")
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "testdata/declarations.yaml", "--base", "salaried", "--with", "freelancer", "--template", "raise_10")
	require.NoError(t, err)
	assert.Contains(t, out, "PAYE DECLARATION COMPARISON")
	assert.Contains(t, out, "freelancer")

	out, err = execute(t, "compare", "testdata/declarations.yaml", "--all", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"baseName": "salaried"`)

	out, err = execute(t, "compare", "--list-templates")
	require.NoError(t, err)
	assert.Contains(t, out, "raise_10")
	assert.Contains(t, out, "with_pension")

	_, err = execute(t, "compare", "testdata/declarations.yaml", "--base", "salaried")
	assert.ErrorContains(t, err, "nothing to compare")
}

func TestGrossUp(t *testing.T) {
	out, err := execute(t, "gross-up", "--net", "5,104,000", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"success": true`)

	out, err = execute(t, "gross-up", "--net", "425333", "--monthly")
	require.NoError(t, err)
	assert.Contains(t, out, "GROSS-UP RESULT")

	_, err = execute(t, "gross-up")
	assert.ErrorContains(t, err, "--net is required")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "paye dev")
}

func TestParseCategory(t *testing.T) {
	c, err := parseCategory("Self-Employed")
	require.NoError(t, err)
	assert.Equal(t, domain.CategorySelfEmployed, c)

	c, err = parseCategory("")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryEmployed, c)

	_, err = parseCategory("retired")
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b,"))
	assert.Nil(t, splitList(""))
}

func TestNewTUIModel(t *testing.T) {
	in := domain.IncomeInput{Name: "prefill"}
	m := newTUIModel(domain.DefaultPAYERules(), &in)
	assert.Nil(t, m.Report())
}
