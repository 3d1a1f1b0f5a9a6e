package nanocurve

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/hupe1980/nanocurve/codec"
	"github.com/hupe1980/nanocurve/curve"
	"github.com/hupe1980/nanocurve/store"
)

// Design files are self-describing: a fixed magic, a format version, the
// codec and compression names, then the compressed encoded payload. Loading
// selects codec and compression from the header, never from configuration.
var fileMagic = [4]byte{'N', 'C', 'R', 'V'}

const fileVersion byte = 1

type designFile struct {
	Parameters curve.HelixParameters `json:"parameters"`
	Helices    []helixRecord         `json:"helices"`
	Planes     []planeRecord         `json:"planes"`
}

type helixRecord struct {
	ID         store.ID              `json:"id"`
	Descriptor curve.CurveDescriptor `json:"descriptor"`
}

type planeRecord struct {
	ID    store.ID              `json:"id"`
	Plane store.PlaneDescriptor `json:"plane"`
}

// Save writes the design's current snapshots to path.
func (d *Design) Save(ctx context.Context, path string) error {
	file := designFile{Parameters: d.HelixParameters()}
	for id, desc := range d.helices.Iter() {
		file.Helices = append(file.Helices, helixRecord{ID: id, Descriptor: desc})
	}
	for id, plane := range d.planes.Iter() {
		file.Planes = append(file.Planes, planeRecord{ID: id, Plane: plane})
	}

	payload, err := d.codec.Marshal(&file)
	if err != nil {
		d.logger.LogSave(ctx, path, 0, err)
		return fmt.Errorf("encode design: %w", err)
	}
	payload, err = d.compression.Compress(payload)
	if err != nil {
		d.logger.LogSave(ctx, path, 0, err)
		return fmt.Errorf("compress design: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(fileMagic[:])
	buf.WriteByte(fileVersion)
	writeName(&buf, d.codec.Name())
	writeName(&buf, d.compression.Name())
	buf.Write(payload)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		d.logger.LogSave(ctx, path, 0, err)
		return err
	}
	d.logger.LogSave(ctx, path, buf.Len(), nil)
	return nil
}

// Load reads a design file written by Save. Codec and compression are taken
// from the file header; options configure everything else and the codec used
// by future saves.
func Load(ctx context.Context, path string, optFns ...Option) (*Design, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rest, fileCodec, fileCompression, err := readHeader(raw)
	if err != nil {
		return nil, err
	}

	payload, err := fileCompression.Decompress(rest)
	if err != nil {
		return nil, fmt.Errorf("decompress design: %w", err)
	}
	var file designFile
	if err := fileCodec.Unmarshal(payload, &file); err != nil {
		return nil, fmt.Errorf("decode design: %w", err)
	}

	helices := make(map[store.ID]curve.CurveDescriptor, len(file.Helices))
	for _, rec := range file.Helices {
		helices[rec.ID] = rec.Descriptor
	}
	planes := make(map[store.ID]store.PlaneDescriptor, len(file.Planes))
	for _, rec := range file.Planes {
		planes[rec.ID] = rec.Plane
	}

	o := defaultOptions()
	o.codec = fileCodec
	o.compression = fileCompression
	o.params = file.Parameters
	for _, fn := range optFns {
		fn(&o)
	}

	d := &Design{
		helices:     store.FromMap(helices),
		planes:      store.FromMap(planes),
		codec:       o.codec,
		compression: o.compression,
		logger:      o.logger,
		params:      o.params,
		cache:       make(map[store.ID]cachedCurve),
	}
	d.logger.LogLoad(ctx, path, d.helices.Len(), d.planes.Len(), nil)
	return d, nil
}

func writeName(buf *bytes.Buffer, name string) {
	buf.WriteByte(byte(len(name)))
	buf.WriteString(name)
}

func readHeader(raw []byte) (rest []byte, c codec.Codec, comp Compression, err error) {
	if len(raw) < len(fileMagic)+1 || !bytes.Equal(raw[:len(fileMagic)], fileMagic[:]) {
		got := raw
		if len(got) > len(fileMagic) {
			got = got[:len(fileMagic)]
		}
		return nil, nil, nil, &ErrBadMagic{Got: got}
	}
	raw = raw[len(fileMagic):]

	version := raw[0]
	if version != fileVersion {
		return nil, nil, nil, &ErrUnsupportedVersion{Version: version}
	}
	raw = raw[1:]

	codecName, raw, err := readName(raw)
	if err != nil {
		return nil, nil, nil, err
	}
	compName, raw, err := readName(raw)
	if err != nil {
		return nil, nil, nil, err
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, nil, nil, &ErrUnknownCodec{Name: codecName}
	}
	comp, ok = CompressionByName(compName)
	if !ok {
		return nil, nil, nil, &ErrUnknownCompression{Name: compName}
	}
	return raw, c, comp, nil
}

func readName(raw []byte) (string, []byte, error) {
	if len(raw) < 1 {
		return "", nil, fmt.Errorf("truncated design file header")
	}
	n := int(raw[0])
	raw = raw[1:]
	if len(raw) < n {
		return "", nil, fmt.Errorf("truncated design file header")
	}
	return string(raw[:n]), raw[n:], nil
}
