package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRootCmd(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--data-dir", dir, "--cost", "4"})

	err := rootCmd.ExecuteContext(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Data seeded into "+dir+"\n"+
		"  Users: 2\n"+
		"  Cases: 4\n"+
		"  Evidence items: 2\n"+
		"    Bias: 1\n"+
		"    Deepfakes: 1\n"+
		"    Surveillance: 1\n"+
		"    Weapons: 1\n", out.String())
	assert.FileExists(t, filepath.Join(dir, "cases.json"))
}

func TestRootCmd_InvalidCost(t *testing.T) {
	t.Cleanup(func() { seedFlags.BcryptCost = bcrypt.DefaultCost })
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--data-dir", t.TempDir(), "--cost", "99"})

	err := rootCmd.ExecuteContext(context.Background())

	assert.ErrorContains(t, err, "--cost must be between")
}
