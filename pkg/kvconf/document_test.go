package kvconf_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251018-go-pkg-kvconf/pkg/kvconf"
)

func TestSplitKey(t *testing.T) {
	assert.Equal(t, []string{"a"}, kvconf.SplitKey("a"))
	assert.Equal(t, []string{"a", "b", "c"}, kvconf.SplitKey("a.b.c"))
	assert.Equal(t, []string{"a", "", "b"}, kvconf.SplitKey("a..b"))
	assert.Equal(t, []string{""}, kvconf.SplitKey(""))
}

func TestDocumentSet_Nesting(t *testing.T) {
	doc := kvconf.New()
	require.NoError(t, doc.Set("name", "demo"))
	require.NoError(t, doc.Set("server.host", "localhost"))
	require.NoError(t, doc.Set("server.port", "8080"))
	require.NoError(t, doc.Set("a.b.c.d", "deep"))

	want := kvconf.Document{
		"name": "demo",
		"server": kvconf.Document{
			"host": "localhost",
			"port": "8080",
		},
		"a": kvconf.Document{
			"b": kvconf.Document{
				"c": kvconf.Document{"d": "deep"},
			},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentSet_LastWriteWins(t *testing.T) {
	doc := kvconf.New()
	require.NoError(t, doc.Set("a", "1"))
	require.NoError(t, doc.Set("a", "2"))
	require.NoError(t, doc.Set("x.y", "old"))
	require.NoError(t, doc.Set("x.y", "new"))

	assert.Equal(t, kvconf.Document{"a": "2", "x": kvconf.Document{"y": "new"}}, doc)
}

func TestDocumentSet_LeafReplacesSubtree(t *testing.T) {
	doc := kvconf.New()
	require.NoError(t, doc.Set("a.b", "1"))
	require.NoError(t, doc.Set("a", "flat"))

	assert.Equal(t, kvconf.Document{"a": "flat"}, doc)
}

func TestDocumentSet_KeyConflict(t *testing.T) {
	doc := kvconf.New()
	require.NoError(t, doc.Set("a", "1"))
	require.NoError(t, doc.Set("x.y", "2"))

	err := doc.Set("a.b", "2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, kvconf.ErrKeyConflict))

	var conflict *kvconf.KeyConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "a.b", conflict.Key)
	assert.Equal(t, "a", conflict.Segment)

	err = doc.Set("x.y.z", "3")
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "x.y", conflict.Segment)

	// 失败的插入不修改文档
	assert.Equal(t, kvconf.Document{"a": "1", "x": kvconf.Document{"y": "2"}}, doc)
}

func TestDocumentInsert_Overwrite(t *testing.T) {
	doc := kvconf.New()
	require.NoError(t, doc.Set("a", "1"))
	require.NoError(t, doc.Insert("a.b", "2", kvconf.ConflictOverwrite))

	assert.Equal(t, kvconf.Document{"a": kvconf.Document{"b": "2"}}, doc)
}

func TestDocumentSet_EmptySegments(t *testing.T) {
	doc := kvconf.New()
	require.NoError(t, doc.Set("a..b", "1"))
	require.NoError(t, doc.Set("", "root"))

	assert.Equal(t, kvconf.Document{
		"a": kvconf.Document{"": kvconf.Document{"b": "1"}},
		"":  "root",
	}, doc)
	assert.Equal(t, map[string]string{"a..b": "1", "": "root"}, doc.Flatten())
}

func TestDocumentGetLookup(t *testing.T) {
	doc := kvconf.New()
	require.NoError(t, doc.Set("server.host", "localhost"))
	require.NoError(t, doc.Set("name", "demo"))

	val, ok := doc.Get("server")
	require.True(t, ok)
	assert.Equal(t, kvconf.Document{"host": "localhost"}, val)

	host, ok := doc.Lookup("server.host")
	assert.True(t, ok)
	assert.Equal(t, "localhost", host)

	_, ok = doc.Lookup("server")
	assert.False(t, ok, "nested document is not a leaf")

	_, ok = doc.Get("server.missing")
	assert.False(t, ok)

	_, ok = doc.Get("name.sub")
	assert.False(t, ok, "cannot descend through a leaf")
}

func TestDocument_HandBuiltMaps(t *testing.T) {
	doc := kvconf.Document{"server": map[string]any{"host": "a"}}
	require.NoError(t, doc.Set("server.port", "80"))

	port, ok := doc.Lookup("server.port")
	assert.True(t, ok)
	assert.Equal(t, "80", port)
	assert.Equal(t, []string{"server.host", "server.port"}, doc.Keys())
}

func TestDocumentKeysAndFlatten(t *testing.T) {
	doc := kvconf.New()
	require.NoError(t, doc.Set("b", "2"))
	require.NoError(t, doc.Set("a.y", "y"))
	require.NoError(t, doc.Set("a.x", "x"))

	assert.Equal(t, []string{"a.x", "a.y", "b"}, doc.Keys())
	assert.Equal(t, map[string]string{"a.x": "x", "a.y": "y", "b": "2"}, doc.Flatten())
	assert.Empty(t, kvconf.New().Keys())
}

func TestDocumentClone(t *testing.T) {
	doc := kvconf.New()
	require.NoError(t, doc.Set("a.b", "1"))

	clone := doc.Clone()
	require.NoError(t, clone.Set("a.c", "2"))

	assert.Equal(t, kvconf.Document{"a": kvconf.Document{"b": "1"}}, doc)
	assert.Equal(t, kvconf.Document{"a": kvconf.Document{"b": "1", "c": "2"}}, clone)
}

func TestConflictPolicyString(t *testing.T) {
	assert.Equal(t, "reject", kvconf.ConflictReject.String())
	assert.Equal(t, "overwrite", kvconf.ConflictOverwrite.String())
	assert.Equal(t, "unknown", kvconf.ConflictPolicy(42).String())
}
