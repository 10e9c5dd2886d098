// Package md2 implements the MD2 hash algorithm as defined in RFC 1319.
//
// MD2 is cryptographically broken and exists here only so that values
// produced by legacy systems can still be verified.
package md2

import "hash"

// Size of an MD2 checksum in bytes.
const Size = 16

// BlockSize of MD2 in bytes.
const BlockSize = 16

// piSubst is the substitution table derived from the digits of pi.
var piSubst = [256]byte{
	41, 46, 67, 201, 162, 216, 124, 1, 61, 54, 84, 161, 236, 240, 6, 19,
	98, 167, 5, 243, 192, 199, 115, 140, 152, 147, 43, 217, 188, 76, 130, 202,
	30, 155, 87, 60, 253, 212, 224, 22, 103, 66, 111, 24, 138, 23, 229, 18,
	190, 78, 196, 214, 218, 158, 222, 73, 160, 251, 245, 142, 187, 47, 238, 122,
	169, 104, 121, 145, 21, 178, 7, 63, 148, 194, 16, 137, 11, 34, 95, 33,
	128, 127, 93, 154, 90, 144, 50, 39, 53, 62, 204, 231, 191, 247, 151, 3,
	255, 25, 48, 179, 72, 165, 181, 209, 215, 94, 146, 42, 172, 86, 170, 198,
	79, 184, 56, 210, 150, 164, 125, 182, 118, 252, 107, 226, 156, 116, 4, 241,
	69, 157, 112, 89, 100, 113, 135, 32, 134, 91, 207, 101, 230, 45, 168, 2,
	27, 96, 37, 173, 174, 176, 185, 246, 28, 70, 97, 105, 52, 64, 126, 15,
	85, 71, 163, 35, 221, 81, 175, 58, 195, 92, 249, 206, 186, 197, 234, 38,
	44, 83, 13, 110, 133, 40, 132, 9, 211, 223, 205, 244, 65, 129, 77, 82,
	106, 220, 55, 200, 108, 193, 171, 250, 36, 225, 123, 8, 12, 189, 177, 74,
	120, 136, 149, 139, 227, 99, 232, 109, 233, 203, 213, 254, 59, 0, 29, 57,
	242, 239, 183, 14, 102, 88, 208, 228, 166, 119, 114, 248, 235, 117, 75, 10,
	49, 68, 80, 180, 143, 237, 31, 26, 219, 153, 141, 51, 159, 17, 131, 20,
}

// digest represents the partial evaluation of an MD2 checksum.
type digest struct {
	state    [48]byte
	checksum [16]byte
	buf      [BlockSize]byte
	nbuf     int
}

// New returns a new hash.Hash computing the MD2 checksum.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

// Sum returns the MD2 checksum of the data.
func Sum(data []byte) [Size]byte {
	var d digest
	d.Write(data)
	return d.checkSum()
}

func (d *digest) Reset() {
	d.state = [48]byte{}
	d.checksum = [16]byte{}
	d.nbuf = 0
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Write(p []byte) (int, error) {
	n := len(p)
	if d.nbuf > 0 {
		c := copy(d.buf[d.nbuf:], p)
		d.nbuf += c
		p = p[c:]
		if d.nbuf == BlockSize {
			d.block(d.buf[:])
			d.nbuf = 0
		}
	}
	for len(p) >= BlockSize {
		d.block(p[:BlockSize])
		p = p[BlockSize:]
	}
	if len(p) > 0 {
		d.nbuf = copy(d.buf[:], p)
	}
	return n, nil
}

func (d *digest) Sum(in []byte) []byte {
	// Make a copy so that the caller can keep writing and summing.
	d0 := *d
	sum := d0.checkSum()
	return append(in, sum[:]...)
}

func (d *digest) checkSum() [Size]byte {
	pad := BlockSize - d.nbuf
	padding := make([]byte, pad)
	for i := range padding {
		padding[i] = byte(pad)
	}
	d.Write(padding)

	checksum := d.checksum
	d.block(checksum[:])

	var out [Size]byte
	copy(out[:], d.state[:Size])
	return out
}

// block mixes one 16-byte block into the state and the running checksum.
func (d *digest) block(p []byte) {
	l := d.checksum[15]
	for j := 0; j < 16; j++ {
		d.checksum[j] ^= piSubst[p[j]^l]
		l = d.checksum[j]
	}

	for j := 0; j < 16; j++ {
		d.state[16+j] = p[j]
		d.state[32+j] = d.state[16+j] ^ d.state[j]
	}

	var t byte
	for j := 0; j < 18; j++ {
		for k := 0; k < 48; k++ {
			d.state[k] ^= piSubst[t]
			t = d.state[k]
		}
		t += byte(j)
	}
}
