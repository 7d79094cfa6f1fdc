// Package compress implements the block codecs behind the port layer's
// compression hooks.
//
// # Block Formats
//
//	Snappy: raw snappy block (uvarint length + snappy elements)
//	LZ4:    [uvarint length][flag][payload]   flag 0 = stored, 1 = lz4 block
//	Zstd:   [uvarint length][zstd frame]
//
// The snappy codec writes plain Snappy blocks but decodes with s2, which
// also accepts the S2 block extensions (repeat offsets, longer copies). A
// block tagged as snappy that uses them therefore decodes rather than
// reporting corruption.
//
// Zstd decoding never grows the output past the length in the header, so a
// frame longer than its header claims is rejected without allocating it.
//
// Every format starts with the uncompressed length as a uvarint, so
// DecodedLen never needs to decompress.
//
// # Thread Safety
//
// Codecs are stateless values and safe for concurrent use. Zstd encoders and
// decoders are pooled internally.
package compress
