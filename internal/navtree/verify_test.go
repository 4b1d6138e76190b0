package navtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	tree, _, err := NewBuilder().Build("docs", []Item{
		DocItem("index"),
		CategoryItem("A", DocItem("a1"), DocItem("gone")).WithLink("a/index"),
	})
	require.NoError(t, err)

	known := map[DocumentRef]bool{"index": true, "a1": true}
	err = Verify(tree, ResolverFunc(func(r DocumentRef) bool { return known[r] }))
	require.Error(t, err)

	unresolved := UnresolvedRefs(err)
	require.Len(t, unresolved, 2)
	assert.Equal(t, DocumentRef("a/index"), unresolved[0].Ref)
	assert.True(t, unresolved[0].Link)
	assert.Equal(t, "docs[1]", unresolved[0].Path.String())
	assert.Equal(t, DocumentRef("gone"), unresolved[1].Ref)
	assert.Equal(t, "docs[1].items[1]", unresolved[1].Path.String())

	known["gone"], known["a/index"] = true, true
	assert.NoError(t, Verify(tree, ResolverFunc(func(r DocumentRef) bool { return known[r] })))
}

func TestVerifyAll(t *testing.T) {
	s, _, err := NewBuilder().BuildAll(&Description{Sidebars: []SidebarSpec{
		{Name: "docs", Items: []Item{DocItem("x")}},
		{Name: "api", Items: []Item{DocItem("y")}},
	}})
	require.NoError(t, err)

	err = VerifyAll(s, ResolverFunc(func(DocumentRef) bool { return false }))
	refs := UnresolvedRefs(err)
	require.Len(t, refs, 2)
	assert.Equal(t, "docs", refs[0].Path.Sidebar)
	assert.Equal(t, "api", refs[1].Path.Sidebar)
}

func TestRefs(t *testing.T) {
	tree, _, err := NewBuilder().Build("docs", []Item{
		DocItem("index"),
		CategoryItem("A", DocItem("a1")).WithLink("a/index"),
	})
	require.NoError(t, err)
	assert.Equal(t, []DocumentRef{"index", "a/index", "a1"}, Refs(tree))
}
