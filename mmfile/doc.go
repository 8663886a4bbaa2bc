// Package mmfile persists matrices as memory-mapped binary files.
//
// Layout (all integers and floats little-endian):
//
//	offset  size  field
//	0       4     magic "LVMX"
//	4       4     format version (uint32, currently 1)
//	8       8     rows (uint64)
//	16      8     cols (uint64)
//	24      8*n   row-major float64 elements (IEEE 754 bits), n = rows*cols
//
// A file always holds at least the 24-byte header, so even an empty matrix is
// a valid, mappable file. An opened File implements matrix.Matrix on top of
// the mapping and can be passed straight to the matrix kernels.
package mmfile
