package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBuiltinCatalog(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "cursor", catalog.DefaultName())
	assert.Equal(t, []string{"cursor", "flat", "rules"}, catalog.Names())

	def := catalog.Default()
	require.Equal(t, "cursor", def.Name)
	assert.Equal(t, []Entry{
		{Src: ".cursorrules", Dest: ".cursorrules"},
		{Src: "rules/code-quality.mdc", Dest: ".cursor/rules/code-quality.mdc"},
		{Src: "rules/documentation.mdc", Dest: ".cursor/rules/documentation.mdc"},
		{Src: "rules/naming-conventions.mdc", Dest: ".cursor/rules/naming-conventions.mdc"},
	}, def.Entries)
}

func TestBuiltinFlatVariantCopiesIntoRoot(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	flat, err := catalog.Lookup("flat")
	require.NoError(t, err)
	for _, entry := range flat.Entries {
		assert.NotContains(t, entry.Dest, "/", "flat variant writes %s outside the root", entry.Dest)
	}
}

func TestBuiltinRulesVariantSkipsCursorrules(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	rules, err := catalog.Lookup("rules")
	require.NoError(t, err)
	require.NotEmpty(t, rules.Entries)
	for _, entry := range rules.Entries {
		assert.NotEqual(t, ".cursorrules", entry.Src)
	}
}

func TestLookup(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	t.Run("case insensitive", func(t *testing.T) {
		m, err := catalog.Lookup(" Flat ")
		require.NoError(t, err)
		assert.Equal(t, "flat", m.Name)
	})

	t.Run("unknown lists names", func(t *testing.T) {
		_, err := catalog.Lookup("nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown variant "nope"`)
		assert.Contains(t, err.Error(), "cursor, flat, rules")
	})

	t.Run("returned manifest is a copy", func(t *testing.T) {
		m, err := catalog.Lookup("cursor")
		require.NoError(t, err)
		m.Entries[0].Dest = "mutated"

		again, err := catalog.Lookup("cursor")
		require.NoError(t, err)
		assert.Equal(t, ".cursorrules", again.Entries[0].Dest)
	})
}

func TestVariantsPreservesDeclarationOrder(t *testing.T) {
	catalog, err := Load()
	require.NoError(t, err)

	variants := catalog.Variants()
	require.Len(t, variants, 3)
	assert.Equal(t, "cursor", variants[0].Name)
	assert.Equal(t, "flat", variants[1].Name)
	assert.Equal(t, "rules", variants[2].Name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "syntax error",
			doc:     "default = ",
			wantErr: "decode manifest catalog",
		},
		{
			name:    "unknown field",
			doc:     "default = \"a\"\nextra = 1\n[[variants]]\nname = \"a\"\n",
			wantErr: "decode manifest catalog",
		},
		{
			name:    "no variants",
			doc:     "default = \"a\"\n",
			wantErr: "no variants",
		},
		{
			name:    "missing default",
			doc:     "default = \"b\"\n[[variants]]\nname = \"a\"\n",
			wantErr: `default variant "b" is not defined`,
		},
		{
			name:    "duplicate variant",
			doc:     "default = \"a\"\n[[variants]]\nname = \"a\"\n[[variants]]\nname = \"a\"\n",
			wantErr: `duplicate variant "a"`,
		},
		{
			name:    "invalid entry",
			doc:     "default = \"a\"\n[[variants]]\nname = \"a\"\n[[variants.entries]]\nsrc = \"/abs\"\ndest = \"x\"\n",
			wantErr: "must be relative",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
