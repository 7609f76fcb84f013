package github

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/sora4431/ghstats/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountResponseDefaults(t *testing.T) {
	t.Parallel()

	// Partial responses must map to zero values, never panic.
	var resp accountResponse
	require.NoError(t, jsoniter.Unmarshal([]byte(`{"data": {"viewer": {}}}`), &resp))

	acc := resp.account()
	assert.Equal(t, app.Contributions{}, acc.toContributions())
	assert.Equal(t, app.RepoPage{}, acc.toRepoPage())

	_, err := acc.toProfile()
	assert.Error(t, err)
}

func TestAccountResponseNoAccountRoot(t *testing.T) {
	t.Parallel()

	var resp accountResponse
	require.NoError(t, jsoniter.Unmarshal([]byte(`{"data": {}, "errors": [{"message": "NOT_FOUND"}]}`), &resp))

	acc := resp.account()
	assert.Equal(t, app.Contributions{}, acc.toContributions())
	require.Len(t, resp.Errors, 1)
}

func TestAccountResponseColorlessLanguage(t *testing.T) {
	t.Parallel()

	body := []byte(`{"data": {"viewer": {"contributionsCollection": {
		"commitContributionsByRepository": [
			{"repository": {"isFork": false, "languages": {"edges": [
				{"size": 10, "node": {"name": "Brainfuck", "color": null}}
			]}}}
		]
	}}}}`)

	var resp accountResponse
	require.NoError(t, jsoniter.Unmarshal(body, &resp))

	c := resp.account().toContributions()
	require.Len(t, c.Repositories, 1)
	require.Len(t, c.Repositories[0].Languages, 1)
	// Empty color passes through; the aggregator substitutes the default.
	assert.Equal(t, "", c.Repositories[0].Languages[0].Color)
}
