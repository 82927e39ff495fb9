package keystore

// KeyJSON is the Web3 Secret Storage (keystore v3) document as written by
// Ethereum clients.
//
//nolint:revive // KeyJSON is the standard name for the keystore document
type KeyJSON struct {
	Address string     `json:"address"`
	Crypto  CryptoJSON `json:"crypto"`
	ID      string     `json:"id"`
	Version int        `json:"version"`
}

type CryptoJSON struct {
	Cipher       string           `json:"cipher"`
	Ciphertext   string           `json:"ciphertext"`
	CipherParams CipherParamsJSON `json:"cipherparams"`
	KDF          string           `json:"kdf"`
	KDFParams    KDFParamsJSON    `json:"kdfparams"`
	MAC          string           `json:"mac"`
}

type CipherParamsJSON struct {
	IV string `json:"iv"`
}

// KDFParamsJSON holds the parameters of either KDF. N, R and P belong to
// scrypt, C and PRF to pbkdf2.
type KDFParamsJSON struct {
	DKLen int    `json:"dklen"`
	Salt  string `json:"salt"`
	N     int    `json:"n,omitempty"`
	R     int    `json:"r,omitempty"`
	P     int    `json:"p,omitempty"`
	C     int    `json:"c,omitempty"`
	PRF   string `json:"prf,omitempty"`
}

const (
	version       = 3
	cipherAES128  = "aes-128-ctr"
	kdfScrypt     = "scrypt"
	kdfPBKDF2     = "pbkdf2"
	prfHMACSHA256 = "hmac-sha256"
)

// ScryptParams defines the scrypt cost parameters used for encryption
type ScryptParams struct {
	N int // CPU/memory cost parameter
	R int // Block size parameter
	P int // Parallelization parameter
}

// StandardScryptParams matches the default of Ethereum clients.
func StandardScryptParams() ScryptParams {
	const (
		scryptN = 1 << 18
		scryptR = 8
		scryptP = 1
	)

	return ScryptParams{N: scryptN, R: scryptR, P: scryptP}
}

// LightScryptParams trades strength for speed, e.g. in tests.
func LightScryptParams() ScryptParams {
	const (
		scryptN = 1 << 12
		scryptR = 8
		scryptP = 6
	)

	return ScryptParams{N: scryptN, R: scryptR, P: scryptP}
}
