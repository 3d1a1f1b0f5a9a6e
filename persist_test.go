package nanocurve_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nanocurve "github.com/hupe1980/nanocurve"
	"github.com/hupe1980/nanocurve/codec"
	"github.com/hupe1980/nanocurve/curve"
	"github.com/hupe1980/nanocurve/store"
	"github.com/hupe1980/nanocurve/vecmath"
)

func buildDesign(t *testing.T, optFns ...nanocurve.Option) *nanocurve.Design {
	t.Helper()
	d := nanocurve.New(optFns...)

	sess, err := d.Helices().Edit()
	require.NoError(t, err)
	sess.Push(circleDesc(5))
	four := 4
	sess.Push(curve.CurveDescriptor{
		Kind: curve.KindSpiralCylinder,
		SpiralCylinder: &curve.SpiralCylinderDescriptor{
			Radius:          20,
			NumberOfTurns:   5,
			NumberOfHelices: &four,
			HelixIndex:      1,
		},
	})
	sess.Push(curve.CurveDescriptor{
		Kind:                  curve.KindTorusConcentricCircle,
		TorusConcentricCircle: &curve.TorusConcentricCircleDescriptor{Radius: 30, HelixIndex: 2},
	})
	sess.Close()

	psess, err := d.Planes().Edit()
	require.NoError(t, err)
	psess.Push(store.PlaneDescriptor{
		Position:    vecmath.V3(1, 2, 3),
		Orientation: vecmath.IdentityQuat(),
	})
	psess.Close()

	return d
}

func TestDesign_SaveLoadRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		name string
		opts []nanocurve.Option
	}{
		{name: "defaults"},
		{name: "stdlib json + zstd", opts: []nanocurve.Option{
			nanocurve.WithCodec(codec.JSON{}),
			nanocurve.WithCompression(nanocurve.Zstd{}),
		}},
		{name: "lz4", opts: []nanocurve.Option{
			nanocurve.WithCompression(nanocurve.LZ4{}),
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			params := curve.DefaultHelixParameters()
			params.Rise = 0.34
			opts := append([]nanocurve.Option{nanocurve.WithHelixParameters(params)}, tc.opts...)

			d := buildDesign(t, opts...)
			path := filepath.Join(t.TempDir(), "design.ncrv")
			require.NoError(t, d.Save(context.Background(), path))

			got, err := nanocurve.Load(context.Background(), path)
			require.NoError(t, err)

			assert.Equal(t, params, got.HelixParameters())
			assert.Equal(t, d.Helices().Keys(), got.Helices().Keys())
			assert.Equal(t, d.Helices().Values(), got.Helices().Values())
			assert.Equal(t, d.Planes().Values(), got.Planes().Values())

			// The loaded design instantiates like the original.
			curves, err := got.InstantiateAll(context.Background())
			require.NoError(t, err)
			assert.Len(t, curves, 3)
		})
	}
}

func TestLoad_BadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus")
	require.NoError(t, os.WriteFile(path, []byte("PK\x03\x04 something else"), 0o644))

	_, err := nanocurve.Load(context.Background(), path)
	var badMagic *nanocurve.ErrBadMagic
	assert.ErrorAs(t, err, &badMagic)
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future")
	require.NoError(t, os.WriteFile(path, []byte("NCRV\xff"), 0o644))

	_, err := nanocurve.Load(context.Background(), path)
	var unsupported *nanocurve.ErrUnsupportedVersion
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, byte(0xff), unsupported.Version)
}

func TestLoad_UnknownCodec(t *testing.T) {
	raw := []byte("NCRV\x01")
	raw = append(raw, byte(len("msgpack")))
	raw = append(raw, "msgpack"...)
	raw = append(raw, byte(len("none")))
	raw = append(raw, "none"...)

	path := filepath.Join(t.TempDir(), "oddcodec")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err := nanocurve.Load(context.Background(), path)
	var unknown *nanocurve.ErrUnknownCodec
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "msgpack", unknown.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := nanocurve.Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestSave_ZstdShrinksLargeDesigns(t *testing.T) {
	build := func(comp nanocurve.Compression) string {
		d := nanocurve.New(nanocurve.WithCompression(comp))
		sess, err := d.Helices().Edit()
		require.NoError(t, err)
		for i := 0; i < 512; i++ {
			sess.Push(circleDesc(float64(i)))
		}
		sess.Close()
		path := filepath.Join(t.TempDir(), "design.ncrv")
		require.NoError(t, d.Save(context.Background(), path))
		return path
	}

	plain, err := os.Stat(build(nanocurve.NoCompression{}))
	require.NoError(t, err)
	packed, err := os.Stat(build(nanocurve.Zstd{}))
	require.NoError(t, err)
	assert.Less(t, packed.Size(), plain.Size())
}
