package battleship

import (
	"slices"
	"testing"
)

func TestVerifyCommitment(t *testing.T) {
	board := NewBoard(GridSize, FleetSizes)
	if err := board.PlaceFleetRandomly(NewSeededRandomizer(11), FleetSizes); err != nil {
		t.Fatal(err)
	}
	bits := board.Bits()

	commitment, err := CommitBoard(bits)
	if err != nil {
		t.Fatal(err)
	}

	moved := slices.Clone(bits)
	for i, bit := range moved {
		if bit == 0 {
			moved[i] = 1
			break
		}
	}

	nonBinary := slices.Clone(bits)
	nonBinary[0] = 2

	tests := []struct {
		name      string
		root      string
		salt      string
		bits      []uint8
		expectErr bool
	}{
		{name: "revealed board matches", root: commitment.Root, salt: commitment.Salt, bits: bits},
		{name: "board changed after commit", root: commitment.Root, salt: commitment.Salt, bits: moved, expectErr: true},
		{name: "wrong salt", root: commitment.Root, salt: "0x01", bits: bits, expectErr: true},
		{name: "salt without prefix", root: commitment.Root, salt: commitment.Salt[2:], bits: bits, expectErr: true},
		{name: "salt not hex", root: commitment.Root, salt: "0xzz", bits: bits, expectErr: true},
		{name: "non binary cell", root: commitment.Root, salt: commitment.Salt, bits: nonBinary, expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := VerifyCommitment(test.root, test.salt, test.bits)
			if test.expectErr && err == nil {
				t.Fatal("expected error")
			}
			if !test.expectErr && err != nil {
				t.Fatalf("expected no error\tgot: %v", err)
			}
		})
	}
}

func TestCommitmentIsSalted(t *testing.T) {
	bits := make([]uint8, GridSize*GridSize)
	first, err := CommitBoard(bits)
	if err != nil {
		t.Fatal(err)
	}
	second, err := CommitBoard(bits)
	if err != nil {
		t.Fatal(err)
	}

	if first.Root == second.Root {
		t.Fatal("same board committed twice must give different roots")
	}
}
