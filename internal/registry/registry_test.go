package registry

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	patchworkerrors "github.com/patchwork-ui/patchwork/pkg/errors"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	fsys := fstest.MapFS{
		"ui/button.tsx":  {Data: []byte("export function Button() {}\n")},
		"ui/dialog.tsx":  {Data: []byte("export function Dialog() {}\n")},
		"ui/toast.tsx":   {Data: []byte("export function Toast() {}\n")},
		"docs/button.md": {Data: []byte("# Button\n")},
	}

	r, err := New(fsys, []Component{
		{
			Key:          "button",
			Name:         "Button",
			Dependencies: []string{"react-native-reanimated"},
			Files:        []FileMapping{{Source: "ui/button.tsx", Target: "ui/button.tsx"}},
			Doc:          "docs/button.md",
		},
		{
			Key:      "dialog",
			Name:     "Dialog",
			Requires: []string{"button"},
			Files:    []FileMapping{{Source: "ui/dialog.tsx", Target: "ui/dialog.tsx"}},
		},
		{
			Key:          "toast",
			Name:         "Toast",
			Dependencies: []string{"react-native-reanimated", "react-native-gesture-handler"},
			Files:        []FileMapping{{Source: "ui/toast.tsx", Target: "ui/toast.tsx"}},
		},
	})
	require.NoError(t, err)
	return r
}

func TestGetUnknownKeyListsValidKeys(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	_, err := r.Get("buton")
	require.Error(t, err)

	var unknown *patchworkerrors.UnknownComponentError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "buton", unknown.Key)
	require.Equal(t, []string{"button", "dialog", "toast"}, unknown.Known)
}

func TestListIsSortedByKey(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	list := r.List()
	require.Len(t, list, 3)
	require.Equal(t, "button", list[0].Key)
	require.Equal(t, "dialog", list[1].Key)
	require.Equal(t, "toast", list[2].Key)
}

func TestResolveFollowsRequires(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	resolved, err := r.Resolve([]string{"dialog"})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
	require.Equal(t, "button", resolved[0].Key)
	require.Equal(t, "dialog", resolved[1].Key)
}

func TestResolveDeduplicates(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	resolved, err := r.Resolve([]string{"button", "dialog", "button"})
	require.NoError(t, err)
	require.Len(t, resolved, 2)
}

func TestResolveUnknownKeyFails(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	_, err := r.Resolve([]string{"button", "bogus"})
	require.Error(t, err)
	var unknown *patchworkerrors.UnknownComponentError
	require.ErrorAs(t, err, &unknown)
}

func TestNewRejectsDanglingRequires(t *testing.T) {
	t.Parallel()

	_, err := New(fstest.MapFS{}, []Component{
		{Key: "dialog", Name: "Dialog", Requires: []string{"button"}},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), `requires unknown component "button"`)
}

func TestNewRejectsDuplicateKeys(t *testing.T) {
	t.Parallel()

	_, err := New(fstest.MapFS{}, []Component{
		{Key: "button", Name: "Button"},
		{Key: "button", Name: "Button Again"},
	})
	require.Error(t, err)
}

func TestDocReadsEmbeddedMarkdown(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	doc, err := r.Doc("button")
	require.NoError(t, err)
	require.Equal(t, "# Button\n", string(doc))

	doc, err = r.Doc("toast")
	require.NoError(t, err)
	require.Nil(t, doc)
}

func TestNpmDependenciesUnion(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	resolved, err := r.Resolve([]string{"button", "toast"})
	require.NoError(t, err)

	deps := NpmDependencies(resolved)
	require.Equal(t, []string{"react-native-gesture-handler", "react-native-reanimated"}, deps)
}

func TestBuiltinRegistryIsWellFormed(t *testing.T) {
	t.Parallel()

	r, err := Builtin()
	require.NoError(t, err)
	require.NotEmpty(t, r.Keys())

	// Every declared file and doc must exist in the embedded tree.
	for _, c := range r.List() {
		require.NotEmpty(t, c.Files, "component %s has no files", c.Key)
		for _, f := range c.Files {
			data, err := r.Open(f.Source)
			require.NoError(t, err, "component %s source %s", c.Key, f.Source)
			require.NotEmpty(t, data)
		}
		doc, err := r.Doc(c.Key)
		require.NoError(t, err)
		require.NotEmpty(t, doc, "component %s doc", c.Key)
	}
}

func TestResolveIsStableAcrossCalls(t *testing.T) {
	t.Parallel()

	r := testRegistry(t)

	first, err := r.Resolve([]string{"dialog", "toast"})
	require.NoError(t, err)
	second, err := r.Resolve([]string{"dialog", "toast"})
	require.NoError(t, err)
	require.Equal(t, first, second)
}
