package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/finassist-cli/internal/adapters/driven/corpus/memory"
	"github.com/opsdesk/finassist-cli/internal/core/domain"
	"github.com/opsdesk/finassist-cli/internal/core/services"
)

// setupTestAssistant swaps in an assistant backed by an in-memory
// corpus and returns a cleanup function restoring the previous wiring.
func setupTestAssistant() func() {
	store := memory.NewCorpusStore()
	store.SetCorpus(&domain.Corpus{
		Chunks: []domain.Chunk{
			{Document: "HPORDM_Fund_Transfer.pdf", Page: 4,
				Text: "Invoke menu HPORDM for NEFT outward transfer\nEnter the beneficiary account and amount, then submit\nSelect NEFT as transaction type and authorise the record"},
		},
		Documents: []domain.DocumentMeta{
			{Document: "HPORDM_Fund_Transfer.pdf", Pages: 20},
			{Document: "Finacle_10x_Menu_Booklet.pdf", Pages: 180},
		},
	})

	old := assistantService
	assistantService = services.NewAssistantService(store, nil, nil)
	return func() {
		assistantService = old
	}
}

func TestAskCmd_Use(t *testing.T) {
	assert.Equal(t, "ask [query]", askCmd.Use)
}

func TestAskCmd_Short(t *testing.T) {
	assert.Equal(t, "Answer an operational query", askCmd.Short)
}

func TestAskCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"ask"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestAskCmd_HasLimitFlag(t *testing.T) {
	flag := askCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "10", flag.DefValue)
}

func TestAskCmd_HasStepsFlag(t *testing.T) {
	flag := askCmd.Flags().Lookup("steps")
	require.NotNil(t, flag, "steps flag should exist")
	assert.Equal(t, "8", flag.DefValue)
}

func TestAskCmd_ExecutesWithQuery(t *testing.T) {
	cleanup := setupTestAssistant()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "NEFT kaise kare"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "HPORDM")
	assert.Contains(t, buf.String(), "Sources:")
	assert.Contains(t, buf.String(), "HPORDM_Fund_Transfer.pdf (page 4)")
}

func TestAskCmd_EnquiryCardOutput(t *testing.T) {
	cleanup := setupTestAssistant()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "nominee details"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "HACI")
	assert.Contains(t, buf.String(), "Finacle_10x_Menu_Booklet.pdf")
	assert.Contains(t, buf.String(), "page 107")
}

func TestAskCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestAssistant()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "--json", "NEFT kaise kare"})
	defer func() {
		rootCmd.SetArgs(nil)
		askJSON = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "\"menu_candidates\"")
	assert.Contains(t, buf.String(), "\"HPORDM\"")
}

func TestAskCmd_CorpusNotReadyIsFriendly(t *testing.T) {
	old := assistantService
	assistantService = services.NewAssistantService(memory.NewCorpusStore(), nil, nil)
	defer func() {
		assistantService = old
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "NEFT kaise kare"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Corpus not loaded yet")
}

func TestAskCmd_MissingBookletIsFriendly(t *testing.T) {
	store := memory.NewCorpusStore()
	store.SetCorpus(&domain.Corpus{
		Chunks:    []domain.Chunk{{Document: "NEFT_SOP.pdf", Page: 1, Text: "neft text"}},
		Documents: []domain.DocumentMeta{{Document: "NEFT_SOP.pdf", Pages: 12}},
	})
	old := assistantService
	assistantService = services.NewAssistantService(store, nil, nil)
	defer func() {
		assistantService = old
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "nominee details"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "no booklet manual was found")
}

func TestAskCmd_LimitFlagApplies(t *testing.T) {
	cleanup := setupTestAssistant()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"ask", "-n", "1", "NEFT kaise kare"})
	defer func() {
		rootCmd.SetArgs(nil)
		askLimit = 10
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "[1] HPORDM_Fund_Transfer.pdf")
	assert.NotContains(t, buf.String(), "[2]")
}
