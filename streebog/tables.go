//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package streebog implements the GOST R 34.11-2012 ("Streebog")
// hash function in its 512-bit and 256-bit output variants.
package streebog

// pi is the S-box substitution table from GOST R 34.11-2012 Appendix
// A. It is a bijection on the byte range; substitution replaces each
// byte x[i] with pi[x[i]].
var pi = [256]byte{
	252, 238, 221, 17, 207, 110, 49, 22, 251, 196, 250, 218, 35, 197, 4, 77,
	233, 119, 240, 219, 147, 46, 153, 186, 23, 54, 241, 187, 20, 205, 95, 193,
	249, 24, 101, 90, 226, 92, 239, 33, 129, 28, 60, 66, 139, 1, 142, 79,
	5, 132, 2, 174, 227, 106, 143, 160, 6, 11, 237, 152, 127, 212, 211, 31,
	235, 52, 44, 81, 234, 200, 72, 171, 242, 42, 104, 162, 253, 58, 206, 204,
	181, 112, 14, 86, 8, 12, 118, 18, 191, 114, 19, 71, 156, 183, 93, 135,
	21, 161, 150, 41, 16, 123, 154, 199, 243, 145, 120, 111, 157, 158, 178, 177,
	50, 117, 25, 61, 255, 53, 138, 126, 109, 84, 198, 128, 195, 189, 13, 87,
	223, 245, 36, 169, 62, 168, 67, 201, 215, 121, 214, 246, 124, 34, 185, 3,
	224, 15, 236, 222, 122, 148, 176, 188, 220, 232, 40, 80, 78, 51, 10, 74,
	167, 151, 96, 115, 30, 0, 98, 68, 26, 184, 56, 130, 100, 159, 38, 65,
	173, 69, 70, 146, 39, 94, 85, 47, 140, 163, 165, 125, 105, 213, 149, 59,
	7, 88, 179, 64, 134, 172, 29, 247, 48, 55, 107, 228, 136, 217, 231, 137,
	225, 27, 131, 73, 76, 63, 248, 254, 141, 83, 170, 144, 202, 216, 133, 97,
	32, 113, 103, 164, 45, 43, 9, 91, 203, 155, 37, 208, 190, 229, 108, 82,
	89, 166, 116, 210, 230, 244, 180, 192, 209, 102, 175, 194, 57, 75, 99, 182,
}

// tau is the byte transposition permutation: it reads an 8x8 matrix
// of bytes stored row-major and writes it out column-major. GOST R
// 34.11-2012 gives this as an explicit 64-entry table; it is
// generated once here from its defining relation instead of
// hand-transcribed, since the relation is exact and removes a
// transcription hazard that a 64-entry literal would otherwise carry.
var tau = func() (t [64]byte) {
	for i := 0; i < 64; i++ {
		t[i] = byte((i%8)*8 + i/8)
	}
	return
}()

// a holds the 64 binary-matrix rows used by the linear transform L.
// Bit j (MSB-first) of a 64-bit lane selects whether a[j] is XORed
// into the lane's output; see (Block).linearTransform.
var a = [64]uint64{
	0x8e20faa72ba0b470, 0x47107ddd9b505a38, 0xad08b0e0c3282d1c, 0xd8045870ef14980e,
	0x6c022c38f90a4c07, 0x3601161cf205268d, 0x1b8e0b0e798c13c8, 0x83478b07b2468764,
	0xa011d380818e8f40, 0x5086e740ce47c920, 0x2843fd2067adea10, 0x14aff010bdd87508,
	0x0ad97808d06cb404, 0x05e23c0468365a02, 0x8c711e02341b2d01, 0x46b60f011a83988e,
	0x90dab52a387ae76f, 0x486dd4151c3dfdb9, 0x24b86a840e90f0d2, 0x125c354207487869,
	0x092e94218d243cba, 0x8a174a9ec8121e5d, 0x4585254f64090fa0, 0xaccc9ca9328a8950,
	0x9d4df05d5f661451, 0xc0a878a0a1330aa6, 0x60543c50de970553, 0x302a1e286fc58ca7,
	0x18150f14b9ec46dd, 0x0c84890ad27623e0, 0x0642ca05693b9f70, 0x0321658cba93c138,
	0x86275df09ce8aaa8, 0x439da0784e745554, 0xafc0503c273aa42a, 0xd960281e9d1d5215,
	0xe230140fc0802984, 0x71180a8960409a42, 0xb60c05ca30204d21, 0x5b068c651810a89e,
	0x456c34887a3805b9, 0xac361a443d1c8cd2, 0x561b0d22900e4669, 0x2b838811480723ba,
	0x9bcf4486248d9f5d, 0xc3e9224312c8c1a0, 0xeffa11af0964ee50, 0xf97d86d98a327728,
	0xe4fa2054a80b329c, 0x727d102a548b194e, 0x39b008152acb8227, 0x9258048415eb419d,
	0x492c024284fbaec0, 0xaa16012142f35760, 0x550b8e9e21f7a530, 0xa48b474f9ef5dc18,
	0x70a6a56e2440598e, 0x3853dc371220a247, 0x1ca76e95091051ad, 0x0edd37c48a08a6d8,
	0x07e095624504536c, 0x8d70c431ac02a736, 0xc83862965601dd1b, 0x641c314b2b8ee083,
}

// c holds the twelve 64-byte round constants used by the key
// schedule. Each entry is a Block per GOST R 34.11-2012 Appendix A.
var c = [12]Block{
	{
		0xb1, 0x08, 0x5b, 0xda, 0x1e, 0xca, 0xda, 0xe9, 0xeb, 0xcb, 0x2f, 0x81, 0xc0, 0x65, 0x7c, 0x1f,
		0x2f, 0x6a, 0x76, 0x43, 0x2e, 0x45, 0xd0, 0x16, 0x71, 0x4e, 0xb8, 0x8d, 0x75, 0x85, 0xc4, 0xfc,
		0x4b, 0x7c, 0xe0, 0x91, 0x92, 0x67, 0x69, 0x01, 0xa2, 0x42, 0x2a, 0x08, 0xa4, 0x60, 0xd3, 0x15,
		0x05, 0x76, 0x74, 0x36, 0xcc, 0x74, 0x4d, 0x23, 0xdd, 0x80, 0x65, 0x59, 0xf2, 0xa6, 0x45, 0x07,
	},
	{
		0x6f, 0xa3, 0xb5, 0x8a, 0xa9, 0x9d, 0x2f, 0x1a, 0x4f, 0xe3, 0x9d, 0x46, 0x0f, 0x70, 0xb5, 0xd7,
		0xf3, 0xfe, 0xea, 0x72, 0x0a, 0x23, 0x2b, 0x98, 0x61, 0xd5, 0x5e, 0x0f, 0x16, 0xb5, 0x01, 0x31,
		0x9a, 0xb5, 0x17, 0x6b, 0x12, 0xd6, 0x99, 0x58, 0x5c, 0xb5, 0x61, 0xc2, 0xdb, 0x0a, 0xa7, 0xca,
		0x55, 0xdd, 0xa2, 0x1b, 0xd7, 0xcb, 0xcd, 0x56, 0xe6, 0x79, 0x04, 0x70, 0x21, 0xb1, 0x9b, 0xb7,
	},
	{
		0xf5, 0x74, 0xdc, 0xac, 0x2b, 0xce, 0x2f, 0xc7, 0x0a, 0x39, 0xfc, 0x28, 0x6a, 0x3d, 0x84, 0x35,
		0x06, 0xf1, 0x5e, 0x5f, 0x52, 0x9c, 0x1f, 0x8b, 0xf2, 0xea, 0x75, 0x14, 0xb1, 0x29, 0x7b, 0x7b,
		0xd3, 0xe2, 0x0f, 0xe4, 0x90, 0x35, 0x9e, 0xb1, 0xc1, 0xc9, 0x3a, 0x37, 0x60, 0x62, 0xdb, 0x09,
		0xc2, 0xb6, 0xf4, 0x43, 0x86, 0x7a, 0xdb, 0x31, 0x99, 0x1e, 0x96, 0xf5, 0x0a, 0xba, 0x0a, 0xb2,
	},
	{
		0xef, 0x1f, 0xdf, 0xb3, 0xe8, 0x15, 0x66, 0xd2, 0xf9, 0x48, 0xe1, 0xa0, 0x5d, 0x71, 0xe4, 0xdd,
		0x48, 0x8e, 0x85, 0x7e, 0x33, 0x5c, 0x3c, 0x7d, 0x9d, 0x72, 0x1c, 0xad, 0x68, 0x5e, 0x35, 0x3f,
		0xa9, 0xd7, 0x2c, 0x82, 0xed, 0x03, 0xd6, 0x75, 0xd8, 0xb7, 0x13, 0x33, 0x93, 0x52, 0x03, 0xbe,
		0x34, 0x53, 0xea, 0xa1, 0x93, 0xe8, 0x37, 0xf1, 0x22, 0x0c, 0xbe, 0xbc, 0x84, 0xe3, 0xd1, 0x2e,
	},
	{
		0x4b, 0xea, 0x6b, 0xac, 0xad, 0x47, 0x47, 0x99, 0x9a, 0x3f, 0x41, 0x0c, 0x6c, 0xa9, 0x23, 0x63,
		0x7f, 0x15, 0x1c, 0x1f, 0x16, 0x86, 0x10, 0x4a, 0x35, 0x9e, 0x35, 0xd7, 0x80, 0x0f, 0xff, 0xbd,
		0xbf, 0xcd, 0x17, 0x47, 0x25, 0x3a, 0xf5, 0xa3, 0xdf, 0xff, 0x00, 0xb7, 0x23, 0x27, 0x1a, 0x16,
		0x7a, 0x15, 0xe5, 0x36, 0x34, 0x5e, 0x39, 0x4e, 0x72, 0x21, 0x73, 0x2a, 0x35, 0x5c, 0xa9, 0x7d,
	},
	{
		0xdb, 0x6d, 0xf1, 0x94, 0xe3, 0x6e, 0x24, 0xce, 0x2a, 0xd6, 0x28, 0x6d, 0x63, 0x29, 0x1f, 0x3a,
		0x13, 0x3f, 0x9e, 0xd7, 0x5f, 0x6b, 0xaf, 0x52, 0x05, 0x18, 0xe2, 0xc8, 0xdb, 0xc9, 0x83, 0xda,
		0x08, 0x27, 0x6e, 0x4e, 0xe7, 0xfb, 0xe7, 0xf8, 0x10, 0x19, 0xa9, 0xa2, 0x5c, 0x81, 0x04, 0x33,
		0x21, 0x1a, 0x10, 0xb9, 0xfc, 0xca, 0x9d, 0xd7, 0x4f, 0x1a, 0x7f, 0xe9, 0x2d, 0xc4, 0x88, 0xb5,
	},
	{
		0x98, 0x12, 0xee, 0xab, 0x87, 0xdb, 0x63, 0x0b, 0xd6, 0xa9, 0x87, 0x04, 0x21, 0xd1, 0x18, 0xec,
		0x3a, 0x41, 0x5d, 0x5f, 0x5a, 0xca, 0xe4, 0x1b, 0x6c, 0x60, 0x3a, 0x3a, 0xed, 0xa4, 0xb0, 0x89,
		0x8c, 0x1e, 0x48, 0x43, 0xb1, 0x5e, 0x0e, 0x53, 0xa0, 0x47, 0xbd, 0x8b, 0x94, 0x4e, 0x73, 0x20,
		0x1a, 0x4d, 0xef, 0xe4, 0x58, 0x60, 0xb9, 0x76, 0x58, 0x51, 0x07, 0x0e, 0xed, 0x9e, 0x51, 0xc8,
	},
	{
		0x6e, 0x8f, 0xac, 0x49, 0x29, 0x12, 0xd7, 0x35, 0x15, 0xe6, 0x64, 0x58, 0xbe, 0x05, 0x7e, 0x0e,
		0xb5, 0x48, 0x89, 0x0c, 0xe3, 0xcd, 0x94, 0xe5, 0xd5, 0x11, 0x66, 0x07, 0x4c, 0x23, 0xc8, 0xf1,
		0x31, 0xbb, 0xbd, 0xd2, 0xc4, 0xd9, 0x53, 0x91, 0xab, 0x36, 0xed, 0x10, 0xc1, 0x9b, 0x78, 0xa3,
		0x73, 0x7c, 0x50, 0xfb, 0x49, 0x14, 0x7c, 0xd2, 0x5e, 0xb5, 0x31, 0x9d, 0xa1, 0x36, 0x52, 0xfc,
	},
	{
		0x9e, 0x99, 0xa3, 0x4e, 0x3a, 0x91, 0x7a, 0x4f, 0x0c, 0xa1, 0x9e, 0x83, 0x11, 0xe7, 0xd9, 0x89,
		0x2b, 0x80, 0x64, 0x27, 0x88, 0xb4, 0xd9, 0xa5, 0x1a, 0x2b, 0x33, 0x01, 0xcf, 0xa3, 0x3d, 0xee,
		0x6e, 0x78, 0x3a, 0x34, 0xc1, 0x44, 0xc5, 0x5d, 0x6e, 0xac, 0x03, 0xd2, 0xf5, 0x4a, 0x5a, 0x76,
		0x1c, 0xae, 0x45, 0x50, 0x47, 0x0b, 0xb5, 0xf3, 0x3a, 0xc5, 0x05, 0x89, 0x7e, 0x0c, 0x40, 0xef,
	},
	{
		0xe1, 0x7c, 0x00, 0x98, 0xac, 0x2e, 0x2d, 0xd8, 0x55, 0xf3, 0xc1, 0x0b, 0x15, 0xea, 0xe7, 0x32,
		0x6f, 0x33, 0x11, 0xfd, 0x33, 0x7f, 0x5a, 0xce, 0x5c, 0x7d, 0x01, 0xa4, 0xd0, 0x34, 0x08, 0xac,
		0x69, 0x5a, 0x45, 0x8b, 0xee, 0xd4, 0xf4, 0x2d, 0x16, 0x4f, 0x7e, 0xc5, 0x9c, 0x9d, 0xbd, 0x50,
		0x9b, 0x26, 0xf2, 0xf4, 0x85, 0x6c, 0x1a, 0x0c, 0xac, 0x34, 0xaa, 0xf9, 0xfb, 0xef, 0x0d, 0xfd,
	},
	{
		0x83, 0xa3, 0x41, 0x5c, 0xf5, 0xf9, 0x2b, 0x53, 0xc7, 0x8e, 0x15, 0xb4, 0x58, 0x80, 0xad, 0x1e,
		0x3a, 0x24, 0xdc, 0xef, 0xf9, 0x18, 0x5e, 0x7a, 0x1b, 0xec, 0x0c, 0xc1, 0x95, 0xb8, 0x06, 0x22,
		0xc9, 0x40, 0x5a, 0x8e, 0x3d, 0x1f, 0xb5, 0xc3, 0x5e, 0xec, 0x18, 0xf1, 0xdf, 0x8a, 0xb2, 0x90,
		0x56, 0x1d, 0xe3, 0xd1, 0xee, 0x6a, 0x48, 0xdd, 0xa4, 0x6a, 0x58, 0x2a, 0xcd, 0x48, 0xfc, 0x36,
	},
	{
		0x4e, 0x53, 0x35, 0x9e, 0x34, 0x07, 0xf4, 0x0b, 0x1d, 0x6d, 0x28, 0x4a, 0x8a, 0xa2, 0xef, 0xbc,
		0x87, 0xb2, 0xb2, 0x18, 0x0f, 0x76, 0x74, 0xa6, 0x2b, 0x75, 0x01, 0x1b, 0x79, 0xe3, 0x62, 0x38,
		0x92, 0x5e, 0x63, 0x67, 0xd2, 0xe3, 0x18, 0x5a, 0x64, 0x0f, 0x06, 0x70, 0x4c, 0xba, 0x46, 0x38,
		0x37, 0x9c, 0x95, 0x73, 0xe3, 0xa9, 0xb8, 0x74, 0x52, 0x05, 0x60, 0x08, 0x35, 0x9b, 0x3a, 0x5e,
	},
}
