package codec

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffnet-ml/ffnet/network"
)

func buildNet(t *testing.T) *network.Network {
	t.Helper()

	net, err := network.New(network.Topology{Inputs: 2, Hidden: []int{2}, Outputs: 1})
	require.NoError(t, err)
	net.SetWeight(0, 0, 0, 0.1)
	net.SetWeight(0, 0, 1, 0.2)
	net.SetWeight(0, 1, 0, 0.3)
	net.SetWeight(0, 1, 1, 0.4)
	net.SetBias(0, 0, 0.5)
	net.SetBias(0, 1, 0.6)
	net.SetWeight(1, 0, 0, 0.7)
	net.SetWeight(1, 1, 0, 0.8)
	net.SetBias(1, 0, 0.9)
	return net
}

func TestTextRoundTrip(t *testing.T) {
	orig := buildNet(t)

	text, err := EncodeText(orig, "MyNet")
	require.NoError(t, err)
	assert.Equal(t, "MyNet\n2, 2, 1\n0.1 0.2\n0.3 0.4\n0.5 0.6\n0.7\n0.8\n0.9\n", text)

	decoded, name, err := DecodeText(text)
	require.NoError(t, err)
	assert.Equal(t, "MyNet", name)
	assert.True(t, decoded.Topology().Equal(orig.Topology()))
	assert.Equal(t, 0.9, decoded.Bias(1, 0))
}

func TestBinaryRoundTrip(t *testing.T) {
	orig := buildNet(t)

	data, err := EncodeBinary(orig, "MyNet", Float64)
	require.NoError(t, err)

	decoded, name, err := DecodeBinary(data)
	require.NoError(t, err)
	assert.Equal(t, "MyNet", name)
	assert.Equal(t, 0.4, decoded.Weight(0, 1, 1))
}

func TestDecodeBinaryRejectsForeignPayload(t *testing.T) {
	_, _, err := DecodeBinary([]byte("PK\x03\x04 definitely not a network"))
	assert.ErrorIs(t, err, ErrUnsupportedPayload)
}

func TestInvalidArguments(t *testing.T) {
	net := buildNet(t)

	_, err := EncodeText(nil, "x")
	assert.Error(t, err)

	_, _, err = DecodeText("")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = DecodeBinary(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.ErrorIs(t, SaveText("", net, "x"), ErrInvalidArgument)
	assert.Error(t, SaveText(filepath.Join(t.TempDir(), "f.txt"), nil, "x"))

	_, _, err = LoadText("")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.ErrorIs(t, Save("", net, "x"), ErrInvalidArgument)

	_, _, err = Load("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSaveLoadFiles(t *testing.T) {
	dir := t.TempDir()
	net := buildNet(t)

	textPath := filepath.Join(dir, "net.txt")
	binPath := filepath.Join(dir, "net.ffn")

	require.NoError(t, SaveText(textPath, net, "MyNet"))
	require.NoError(t, Save(binPath, net, "MyNet"))

	assert.False(t, IsBinary(textPath))
	assert.True(t, IsBinary(binPath))

	fromText, nameT, err := LoadText(textPath)
	require.NoError(t, err)
	fromBin, nameB, err := Load(binPath)
	require.NoError(t, err)

	assert.Equal(t, nameT, nameB)
	assert.Equal(t, fromText.Weight(1, 0, 0), fromBin.Weight(1, 0, 0))
}

func TestSaveDTypeNarrows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net16.ffn")
	net := buildNet(t)

	require.NoError(t, SaveDType(path, net, "", Float16))

	decoded, _, err := Load(path)
	require.NoError(t, err)
	// 0.1 is not representable in float16; the loaded value is the nearest
	// half-precision neighbour, not the original.
	assert.InDelta(t, 0.1, decoded.Weight(0, 0, 0), 1e-3)
	assert.NotEqual(t, 0.1, decoded.Weight(0, 0, 0))
}

func TestParseSignatureFacade(t *testing.T) {
	topo, err := ParseSignature("2, 4, 1")
	require.NoError(t, err)
	assert.Equal(t, "2, 4, 1", FormatSignature(topo))

	_, err = ParseSignature("garbage")
	assert.ErrorIs(t, err, ErrCannotReadSignature)
}
