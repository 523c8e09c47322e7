package battleship

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	bnmimc "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"

	cerr "github.com/saeidalz13/battleship-solo/internal/error"
)

// 31 bytes always stay below the BN254 scalar field modulus
const saltSize = 31

// Commitment binds the computer to its ship layout before the first
// shot. Root is published when the game is created, Salt only once the
// game is over.
type Commitment struct {
	Root string `json:"root"`
	Salt string `json:"salt"`
}

// encode BN254 field elements as 32-byte big-endian
func feBytes(x *big.Int) []byte {
	b := x.Bytes()
	if len(b) == 32 {
		return b
	}
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

func hashBoard(salt *big.Int, bits []uint8) string {
	h := bnmimc.NewMiMC()
	h.Write(feBytes(salt))
	for _, bit := range bits {
		h.Write(feBytes(new(big.Int).SetUint64(uint64(bit))))
	}
	return fmt.Sprintf("0x%x", h.Sum(nil))
}

func CommitBoard(bits []uint8) (Commitment, error) {
	saltBytes := make([]byte, saltSize)
	if _, err := rand.Read(saltBytes); err != nil {
		return Commitment{}, err
	}
	salt := new(big.Int).SetBytes(saltBytes)

	return Commitment{
		Root: hashBoard(salt, bits),
		Salt: "0x" + hex.EncodeToString(saltBytes),
	}, nil
}

// Checks that the revealed salt and layout hash to the published root.
func VerifyCommitment(root, saltHex string, bits []uint8) error {
	if !strings.HasPrefix(saltHex, "0x") {
		return cerr.ErrInvalidCommitment("salt must be 0x prefixed hex")
	}
	saltBytes, err := hex.DecodeString(saltHex[2:])
	if err != nil || len(saltBytes) > saltSize {
		return cerr.ErrInvalidCommitment("cannot parse salt hex")
	}
	for _, bit := range bits {
		if bit > 1 {
			return cerr.ErrInvalidCommitment("board has non-binary cell")
		}
	}

	if hashBoard(new(big.Int).SetBytes(saltBytes), bits) != root {
		return cerr.ErrInvalidCommitment("root does not match the revealed board")
	}
	return nil
}
