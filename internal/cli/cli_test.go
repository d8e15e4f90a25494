package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffnet-ml/ffnet/codec"
	"github.com/ffnet-ml/ffnet/network"
)

func writeTestNet(t *testing.T, path string, binary bool) {
	t.Helper()

	net, err := network.New(network.Topology{Inputs: 2, Hidden: []int{3}, Outputs: 1})
	require.NoError(t, err)
	net.SetWeight(0, 0, 0, 0.5)

	if binary {
		require.NoError(t, codec.Save(path, net, "TestNet"))
	} else {
		require.NoError(t, codec.SaveText(path, net, "TestNet"))
	}
}

func TestLoadAnySniffsFormat(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	textPath := filepath.Join(dir, "net.txt")
	binPath := filepath.Join(dir, "net.ffn")
	writeTestNet(t, textPath, false)
	writeTestNet(t, binPath, true)

	fromText, name, err := loadAny(ctx, textPath)
	require.NoError(t, err)
	assert.Equal(t, "TestNet", name)

	fromBin, name, err := loadAny(ctx, binPath)
	require.NoError(t, err)
	assert.Equal(t, "TestNet", name)

	assert.Equal(t, fromText.Weight(0, 0, 0), fromBin.Weight(0, 0, 0))
}

func TestRunConvert(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	in := filepath.Join(dir, "net.txt")
	out := filepath.Join(dir, "net.ffn")
	writeTestNet(t, in, false)

	err := runConvert(ctx, in, out, &convertOpts{dtype: "float64"})
	require.NoError(t, err)
	assert.True(t, codec.IsBinary(out))

	back := filepath.Join(dir, "back.txt")
	err = runConvert(ctx, out, back, &convertOpts{toText: true, rename: "Renamed"})
	require.NoError(t, err)

	_, name, err := codec.LoadText(back)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", name)
}

func TestRunConvertBadDType(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "net.txt")
	writeTestNet(t, in, false)

	err := runConvert(context.Background(), in, filepath.Join(dir, "out"), &convertOpts{dtype: "int8"})
	assert.Error(t, err)
}

func TestRunInit(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fresh.ffn")

	err := runInit(context.Background(), out, &initOpts{topology: "2, 4, 1", name: "Fresh", seed: 1})
	require.NoError(t, err)

	net, name, err := codec.Load(out)
	require.NoError(t, err)
	assert.Equal(t, "Fresh", name)
	assert.Equal(t, "2, 4, 1", codec.FormatSignature(net.Topology()))
}

func TestRunInitBadTopology(t *testing.T) {
	out := filepath.Join(t.TempDir(), "fresh.ffn")
	err := runInit(context.Background(), out, &initOpts{topology: "2, 1"})
	assert.Error(t, err)
}

func TestRunInspectMissingFile(t *testing.T) {
	err := runInspect(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
