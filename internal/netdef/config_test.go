package netdef

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netforge-ml/netforge/internal/layer"
)

// mlp is a small three-layer declaration sequence used across tests.
func mlp() []Setting {
	return []Setting{
		{Name: "input_shape", Value: "1,1,200"},
		{Name: "updater", Value: "adam"},
		{Name: "eta", Value: "0.01"},
		{Name: "netconfig", Value: "start"},
		{Name: "layer[0->1]", Value: "fullc:fc1"},
		{Name: "nhidden", Value: "128"},
		{Name: "layer[1->2]", Value: "relu"},
		{Name: "layer[2->3]", Value: "softmax"},
		{Name: "netconfig", Value: "end"},
	}
}

func TestConfigure_BuildsGraph(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.Configure(mlp()))

	assert.True(t, cfg.Param.Finalized())
	assert.Equal(t, int32(4), cfg.Param.NumNodes)
	assert.Equal(t, int32(3), cfg.Param.NumLayers)
	assert.Equal(t, Shape3{1, 1, 200}, cfg.Param.InputShape)
	assert.Equal(t, "adam", cfg.Updater)

	require.Len(t, cfg.Layers, 3)
	assert.Equal(t, layer.FullConnect, cfg.Layers[0].Type)
	assert.Equal(t, []int32{0}, cfg.Layers[0].NodesIn)
	assert.Equal(t, []int32{1}, cfg.Layers[0].NodesOut)
	assert.Equal(t, int32(-1), cfg.Layers[0].PrimaryLayer)
	assert.Equal(t, layer.ReLU, cfg.Layers[1].Type)
	assert.Equal(t, layer.Softmax, cfg.Layers[2].Type)
}

func TestConfigure_SettingsRouting(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.Configure(mlp()))

	// "eta" precedes any layer: global default.
	assert.Equal(t, []Setting{{Name: "eta", Value: "0.01"}}, cfg.Global)

	// "nhidden" follows layer 0: scoped to it.
	require.Len(t, cfg.LayerSettings, 3)
	assert.Equal(t, []Setting{{Name: "nhidden", Value: "128"}}, cfg.LayerSettings[0])
	assert.Empty(t, cfg.LayerSettings[1])
	assert.Empty(t, cfg.LayerSettings[2])

	// Recognized keys never leak into the free-form collections.
	for _, s := range cfg.Global {
		assert.NotEqual(t, "updater", s.Name)
		assert.NotEqual(t, "input_shape", s.Name)
		assert.NotEqual(t, "netconfig", s.Name)
	}
}

func TestConfigure_ClearsSettingsEachPass(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.Configure(mlp()))
	require.NotEmpty(t, cfg.Global)
	require.NotEmpty(t, cfg.LayerSettings[0])

	// An empty pass on a finalized graph leaves the structure alone but
	// drops every free-form setting.
	require.NoError(t, cfg.Configure(nil))
	assert.Empty(t, cfg.Global)
	assert.Empty(t, cfg.LayerSettings[0])
	assert.Equal(t, int32(3), cfg.Param.NumLayers)
	assert.Len(t, cfg.Layers, 3)
}

func TestConfigure_IdenticalSecondPass(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.Configure(mlp()))
	param := cfg.Param
	layers := append([]LayerDesc(nil), cfg.Layers...)

	require.NoError(t, cfg.Configure(mlp()))
	assert.Equal(t, param, cfg.Param)
	require.Len(t, cfg.Layers, len(layers))
	for i := range layers {
		assert.True(t, cfg.Layers[i].Equal(layers[i]), "layer %d changed", i)
	}
	assert.Equal(t, []Setting{{Name: "nhidden", Value: "128"}}, cfg.LayerSettings[0])
}

func TestConfigure_MismatchedSecondPass(t *testing.T) {
	changed := func(mutate func([]Setting)) error {
		cfg := New()
		if err := cfg.Configure(mlp()); err != nil {
			return err
		}
		second := mlp()
		mutate(second)
		return cfg.Configure(second)
	}

	// Different type for an existing index.
	err := changed(func(s []Setting) { s[6].Value = "sigmoid" })
	assert.ErrorIs(t, err, ErrStructureMismatch)

	// Different connection for an existing index.
	err = changed(func(s []Setting) { s[6].Name = "layer[1->3]" })
	assert.ErrorIs(t, err, ErrStructureMismatch)
}

func TestConfigure_InputShapeFrozenAfterFinalize(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.Configure(mlp()))

	second := mlp()
	second[0].Value = "3,224,224"
	require.NoError(t, cfg.Configure(second))
	assert.Equal(t, Shape3{1, 1, 200}, cfg.Param.InputShape)

	// The updater stays overridable regardless of finalization.
	second[1].Value = "sgd"
	require.NoError(t, cfg.Configure(second))
	assert.Equal(t, "sgd", cfg.Updater)
}

func TestConfigure_MalformedInputShape(t *testing.T) {
	for _, bad := range []string{"1,1", "1,1,200,3", "a,b,c", "1, -1, 200", ""} {
		cfg := New()
		err := cfg.Configure([]Setting{{Name: "input_shape", Value: bad}})
		assert.Error(t, err, "input_shape %q should be rejected", bad)
	}
}

func TestConfigure_SharedLayer(t *testing.T) {
	cfg := New()
	err := cfg.Configure([]Setting{
		{Name: "layer[0->1]", Value: "fullc:mytag"},
		{Name: "layer[1->2]", Value: "relu"},
		{Name: "layer[2->3]", Value: "shared:mytag"},
	})
	require.NoError(t, err)
	require.Len(t, cfg.Layers, 3)
	assert.Equal(t, layer.Shared, cfg.Layers[2].Type)
	assert.Equal(t, int32(0), cfg.Layers[2].PrimaryLayer)
}

func TestConfigure_SharedLayerErrors(t *testing.T) {
	// Tag never defined.
	cfg := New()
	err := cfg.Configure([]Setting{
		{Name: "layer[2->3]", Value: "shared:mytag"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not defined before")

	// Missing tag entirely.
	cfg = New()
	err = cfg.Configure([]Setting{
		{Name: "layer[0->1]", Value: "shared"},
	})
	assert.ErrorIs(t, err, ErrSharedTagMissing)

	// Settings must not attach to a shared layer.
	cfg = New()
	err = cfg.Configure([]Setting{
		{Name: "layer[0->1]", Value: "fullc:fc1"},
		{Name: "layer[1->2]", Value: "shared:fc1"},
		{Name: "lr", Value: "0.1"},
	})
	assert.ErrorIs(t, err, ErrSharedLayerSetting)
}

func TestConfigure_DuplicateTag(t *testing.T) {
	cfg := New()
	err := cfg.Configure([]Setting{
		{Name: "layer[0->1]", Value: "fullc:fc1"},
		{Name: "layer[1->2]", Value: "relu:fc1"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")
}

func TestConfigure_UntaggedLayersDoNotCollide(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.Configure([]Setting{
		{Name: "layer[0->1]", Value: "fullc"},
		{Name: "layer[1->2]", Value: "relu"},
		{Name: "layer[2->3]", Value: "fullc"},
	}))
	assert.Equal(t, int32(4), cfg.Param.NumNodes)
}

func TestConfigure_RelativeForm(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.Configure([]Setting{
		{Name: "layer[0->2]", Value: "fullc"},
		{Name: "layer[+1]", Value: "relu"},
	}))
	require.Len(t, cfg.Layers, 2)
	assert.Equal(t, []int32{2}, cfg.Layers[1].NodesIn)
	assert.Equal(t, []int32{3}, cfg.Layers[1].NodesOut)
	assert.Equal(t, int32(4), cfg.Param.NumNodes)
}

func TestConfigure_InvalidLayerFormats(t *testing.T) {
	for _, bad := range []string{
		"layer[]", "layer[1]", "layer[a->b]", "layer[1->]", "layer[->2]",
		"layer[1->2", "layer[-1->2]", "layer[+-1]", "layer[1->2->3]",
	} {
		cfg := New()
		err := cfg.Configure([]Setting{{Name: bad, Value: "fullc"}})
		require.Error(t, err, "declaration %q should be rejected", bad)
		assert.Contains(t, err.Error(), "invalid layer format")
	}
}

func TestConfigure_UnknownLayerType(t *testing.T) {
	cfg := New()
	err := cfg.Configure([]Setting{{Name: "layer[0->1]", Value: "frobnicate"}})
	assert.ErrorIs(t, err, layer.ErrUnknownType)
}
