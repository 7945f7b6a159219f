package ecc

import (
	"fmt"

	"storj.io/infectious"
)

/*
 * Reed-Solomon protection for hidden payloads, on top of storj.io/infectious.
 *
 * infectious works in shares over GF(2^8); with one-byte shares a block of
 * k data bytes plus nsym parity bytes is a classic systematic RS(k+nsym, k)
 * codeword, and Decode runs Berlekamp-Welch, repairing up to nsym/2
 * corrupted bytes per block.
 */

const (
	// BlockSize is the largest codeword block a GF(2^8) code supports.
	BlockSize = 255

	MaxRedundancy = BlockSize - 1
)

// Encode appends nsym parity bytes to every block of data. Inputs longer
// than BlockSize-nsym bytes are split into consecutive blocks, each
// protected independently. The encoding is systematic: the data bytes of
// every block appear unchanged in front of its parity bytes. Empty data
// encodes to an empty codeword.
func Encode(data []byte, nsym int) ([]byte, error) {
	if nsym < 1 || nsym > MaxRedundancy {
		return nil, fmt.Errorf("Invalid redundancy %d, expected 1..%d", nsym, MaxRedundancy)
	}
	chunk := BlockSize - nsym
	blocks := (len(data) + chunk - 1) / chunk
	result := make([]byte, 0, len(data)+nsym*blocks)
	for start := 0; start < len(data); start += chunk {
		end := start + chunk
		if end > len(data) {
			end = len(data)
		}
		block, err := encodeBlock(data[start:end], nsym)
		if err != nil {
			return nil, err
		}
		result = append(result, block...)
	}
	return result, nil
}

// Decode strips and verifies the parity of every block, repairing
// corrupted bytes where possible. It fails once any block holds more
// errors than its parity can repair.
func Decode(codeword []byte, nsym int) ([]byte, error) {
	if nsym < 1 || nsym > MaxRedundancy {
		return nil, fmt.Errorf("Invalid redundancy %d, expected 1..%d", nsym, MaxRedundancy)
	}
	if len(codeword) == 0 {
		return nil, nil
	}
	// every block carries nsym parity bytes and at least one data byte
	if rem := len(codeword) % BlockSize; rem != 0 && rem <= nsym {
		return nil, fmt.Errorf("Codeword length %d is inconsistent with redundancy %d", len(codeword), nsym)
	}
	result := []byte{}
	for start := 0; start < len(codeword); start += BlockSize {
		end := start + BlockSize
		if end > len(codeword) {
			end = len(codeword)
		}
		data, err := decodeBlock(codeword[start:end], nsym)
		if err != nil {
			return nil, err
		}
		result = append(result, data...)
	}
	return result, nil
}

func encodeBlock(data []byte, nsym int) ([]byte, error) {
	fec, err := infectious.NewFEC(len(data), len(data)+nsym)
	if err != nil {
		return nil, err
	}
	block := make([]byte, len(data)+nsym)
	err = fec.Encode(data, func(s infectious.Share) {
		block[s.Number] = s.Data[0]
	})
	if err != nil {
		return nil, err
	}
	return block, nil
}

func decodeBlock(block []byte, nsym int) ([]byte, error) {
	fec, err := infectious.NewFEC(len(block)-nsym, len(block))
	if err != nil {
		return nil, err
	}
	shares := make([]infectious.Share, len(block))
	for i, b := range block {
		shares[i] = infectious.Share{Number: i, Data: []byte{b}}
	}
	return fec.Decode(nil, shares)
}
