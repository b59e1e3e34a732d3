package prompt

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_OrderAndFlags(t *testing.T) {
	path := writeCSV(t, "prompts.csv",
		"act,prompt,for_devs\n"+
			`"Linux Terminal","Act as a linux terminal",FALSE`+"\n"+
			`"Code Reviewer","Review my code",TRUE`+"\n")

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Linux Terminal", records[0].Act)
	assert.False(t, records[0].ForDevs)
	assert.Equal(t, "Code Reviewer", records[1].Act)
	assert.True(t, records[1].ForDevs)
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "prompts.csv", "act,prompt,for_devs\n")

	records, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoad_MissingDevFlagColumn(t *testing.T) {
	path := writeCSV(t, "prompts.csv",
		"act,prompt\n"+
			`"Translator","Act as a translator"`+"\n"+
			`"Poet","Act as a poet"`+"\n")

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.False(t, rec.ForDevs)
	}
}

func TestLoad_MalformedBooleanIsFalse(t *testing.T) {
	path := writeCSV(t, "prompts.csv",
		"act,prompt,for_devs\n"+
			`"A","a",yes`+"\n"+
			`"B","b",1`+"\n"+
			`"C","c",true`+"\n")

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.False(t, records[0].ForDevs)
	assert.False(t, records[1].ForDevs)
	// TRUE matches in any casing
	assert.True(t, records[2].ForDevs)
}

func TestLoad_EmbeddedDelimiters(t *testing.T) {
	path := writeCSV(t, "prompts.csv",
		"act,prompt,for_devs\n"+
			`"Quoted","I want you to act as a ""translator"", with newlines`+"\n"+
			`and commas, preserved",FALSE`+"\n")

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Contains(t, records[0].Prompt, `"translator"`)
	assert.Contains(t, records[0].Prompt, "\nand commas, preserved")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)

	var loadErr *DataLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Contains(t, loadErr.Path, "absent.csv")
}

func TestLoad_MissingHeader(t *testing.T) {
	path := writeCSV(t, "prompts.csv", "")

	_, err := Load(path)
	var loadErr *DataLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "missing header row", loadErr.Reason)
}

func TestLoad_BadHeader(t *testing.T) {
	path := writeCSV(t, "prompts.csv", "title,body\nx,y\n")

	_, err := Load(path)
	var loadErr *DataLoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestLoad_DuplicateActsPreserved(t *testing.T) {
	path := writeCSV(t, "prompts.csv",
		"act,prompt,for_devs\n"+
			`"Translator","first",FALSE`+"\n"+
			`"Translator","second",FALSE`+"\n")

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Prompt)
	assert.Equal(t, "second", records[1].Prompt)
}

func TestLoad_MultipleFiles(t *testing.T) {
	a := writeCSV(t, "a.csv", "act,prompt,for_devs\n\"A\",\"one\",FALSE\n")
	b := writeCSV(t, "b.csv", "act,prompt,for_devs\n\"B\",\"two\",TRUE\n")

	records, err := Load(a, b)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Act)
	assert.Equal(t, "B", records[1].Act)
}

func TestFilterAudience(t *testing.T) {
	records := []Record{
		{Act: "Linux Terminal", ForDevs: false},
		{Act: "Code Reviewer", ForDevs: true},
	}

	devs := FilterAudience(records, AudienceDevelopers)
	require.Len(t, devs, 1)
	assert.Equal(t, "Code Reviewer", devs[0].Act)

	everyone := FilterAudience(records, AudienceEveryone)
	assert.Len(t, everyone, 2)
}

func TestSearch_CaseInsensitive(t *testing.T) {
	records := []Record{
		{Act: "Linux Terminal", Prompt: "Act as a linux terminal"},
		{Act: "Code Reviewer", Prompt: "Review my code"},
	}

	assert.Len(t, Search(records, "LINUX"), 1)
	assert.Len(t, Search(records, "review"), 1)
	assert.Len(t, Search(records, ""), 2)
	assert.Empty(t, Search(records, "no such prompt"))
}

func TestParseAudience(t *testing.T) {
	assert.Equal(t, AudienceDevelopers, ParseAudience("developers"))
	assert.Equal(t, AudienceDevelopers, ParseAudience("Developers"))
	assert.Equal(t, AudienceEveryone, ParseAudience("everyone"))
	assert.Equal(t, AudienceEveryone, ParseAudience(""))
	assert.Equal(t, AudienceEveryone, ParseAudience("garbage"))
}
