package pseudonym

import (
	"crypto/aes"
	"fmt"

	"github.com/oyaguma3/eapsim-pseudonym/pkg/simid"
)

// fillerNibble はBCD桁の後ろを埋めるニブル値（終端も兼ねる）
const fillerNibble = 0x0f

// packBCD はASCII数字列を1ブロック分のBCDニブル列に詰める。
// 上位ニブルから順に格納し、残りはfillerNibbleで埋める。
func packBCD(digits []byte) ([aes.BlockSize]byte, error) {
	var block [aes.BlockSize]byte
	if len(digits) == 0 {
		return block, fmt.Errorf("%w: no digits to encode", simid.ErrEncodingOverflow)
	}
	if len(digits) > simid.IMSIMaxLen {
		return block, fmt.Errorf("%w: %d digits exceed maximum %d",
			simid.ErrEncodingOverflow, len(digits), simid.IMSIMaxLen)
	}

	for i := range block {
		block[i] = fillerNibble<<4 | fillerNibble
	}
	for i, c := range digits {
		if c < '0' || c > '9' {
			return block, fmt.Errorf("%w: non-decimal character at offset %d",
				simid.ErrEncodingOverflow, i)
		}
		n := c - '0'
		if i%2 == 0 {
			block[i/2] = n<<4 | block[i/2]&0x0f
		} else {
			block[i/2] = block[i/2]&0xf0 | n
		}
	}
	return block, nil
}

// nibbleAt はブロックのi番目のニブルを返す
func nibbleAt(block []byte, i int) byte {
	b := block[i/2]
	if i%2 == 0 {
		return b >> 4
	}
	return b & 0x0f
}

// unpackBCD はBCDニブル列をASCII数字列に戻す。
// 最初のfillerNibbleまたはIMSIMaxLen桁で読み取りを止め、
// 以降のニブルがすべてfillerNibbleであることを検証する。
func unpackBCD(block []byte) ([]byte, error) {
	total := len(block) * 2
	digits := make([]byte, 0, simid.IMSIMaxLen)

	i := 0
	for ; i < total && len(digits) < simid.IMSIMaxLen; i++ {
		n := nibbleAt(block, i)
		if n == fillerNibble {
			break
		}
		if n > 9 {
			return nil, fmt.Errorf("%w: invalid BCD nibble", simid.ErrDecryptionFailed)
		}
		digits = append(digits, '0'+n)
	}
	if len(digits) == 0 {
		return nil, fmt.Errorf("%w: no digits in block", simid.ErrDecryptionFailed)
	}

	for ; i < total; i++ {
		if nibbleAt(block, i) != fillerNibble {
			return nil, fmt.Errorf("%w: malformed filler", simid.ErrDecryptionFailed)
		}
	}
	return digits, nil
}
