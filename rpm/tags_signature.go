/*
 * Copyright 2024 The rpmkit Authors
 *
 * Licensed under the GNU General Public License, version 3 (or later).
 * See the LICENSE file for details.
 */

package rpm

// SignatureTag ids, ported from the teacher's Rpmsigtag* constants
// (src/holo-build/rpm/header.go) and extended from
// original_source/src/header/sigtags.rs and src/signature/tags.rs to cover
// the ids a conformant reader must tolerate (spec.md §6). Signature
// verification itself is a Non-goal; these ids exist so that a store
// containing them round-trips losslessly.
const (
	SigTagSize          uint32 = 1000 // INT32: header+payload size
	SigTagLEMD5_1       uint32 = 1001 // BIN: legacy MD5 (deprecated)
	SigTagPGP           uint32 = 1002 // BIN: PGP signature
	SigTagLEMD5_2       uint32 = 1003 // BIN: legacy MD5 (deprecated)
	SigTagMD5           uint32 = 1004 // BIN: MD5 digest of header+payload
	SigTagGPG           uint32 = 1005 // BIN: GPG signature
	SigTagPGP5          uint32 = 1006 // BIN: legacy PGP5 signature (deprecated)
	SigTagPayloadSize   uint32 = 1007 // INT32: canonical uncompressed payload size (spec.md §9 open question)
	SigTagReservedSpace uint32 = 1008 // BIN: reserved space for signature insertion
	SigTagBadSHA1_1     uint32 = 264  // STRING: legacy, deprecated
	SigTagBadSHA1_2     uint32 = 265  // STRING: legacy, deprecated
	SigTagSHA1          uint32 = 269  // STRING: SHA1 digest of header section
	SigTagDSA           uint32 = 267  // BIN: DSA signature of header section
	SigTagRSA           uint32 = 268  // BIN: RSA signature of header section
	SigTagSHA256        uint32 = 273  // STRING: SHA256 digest of header section
	SigTagFileSignatures uint32 = 274 // BIN: per-file signature sizes
	SigTagFileSignatureLength uint32 = 275 // INT32: per-file signature length
)

var signatureTagNames = map[uint32]string{
	SigTagSize:                "Size",
	SigTagLEMD5_1:             "LEMD5_1",
	SigTagPGP:                 "PGP",
	SigTagLEMD5_2:             "LEMD5_2",
	SigTagMD5:                 "MD5",
	SigTagGPG:                 "GPG",
	SigTagPGP5:                "PGP5",
	SigTagPayloadSize:         "PayloadSize",
	SigTagReservedSpace:       "ReservedSpace",
	SigTagBadSHA1_1:           "BadSHA1_1",
	SigTagBadSHA1_2:           "BadSHA1_2",
	SigTagSHA1:                "SHA1",
	SigTagDSA:                 "DSA",
	SigTagRSA:                 "RSA",
	SigTagSHA256:              "SHA256",
	SigTagFileSignatures:      "FileSignatures",
	SigTagFileSignatureLength: "FileSignatureLength",
}
