package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giraffe-kg/giraffe-cli/internal/core/domain"
)

func TestSequenceCmd_RequiresExactlyOneArg(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"sequence"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSequenceCmd_PrintsFASTA(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sequence", "ROBO_VARIANT:HG38|11|5008472|5008473|C|T"})
	defer func() {
		rootCmd.SetArgs(nil)
		sequencePadding = -1
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), ">hg38 chr11:5008372-5008573")
	assert.Contains(t, buf.String(), "ACGTACGTAC")
}

func TestSequenceCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sequence", "--json", "HG38|11|5008472|5008473"})
	defer func() {
		rootCmd.SetArgs(nil)
		sequenceJSON = false
		sequencePadding = -1
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"sequence": "ACGTACGTAC"`)
	assert.Contains(t, buf.String(), `"chromosome": "11"`)
}

func TestSequenceCmd_DefaultPaddingFromSettings(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	configuredPadding = 250
	mock := variantService.(*mockVariantService)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"sequence", "HG38|11|5008472|5008473"})
	defer func() {
		rootCmd.SetArgs(nil)
		sequencePadding = -1
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, 250, mock.lastPadding)
}

func TestSequenceCmd_InvalidIdentifier(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"sequence", "garbage"})
	defer func() {
		rootCmd.SetArgs(nil)
		sequencePadding = -1
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
