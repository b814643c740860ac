// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package utxo

import (
	"encoding/hex"

	"github.com/bitmark-inc/bankd/digest"
	"github.com/bitmark-inc/bankd/fault"
	"github.com/bitmark-inc/bankd/ledger"
	"github.com/bitmark-inc/bankd/token"
	"github.com/bitmark-inc/bankd/util"
)

// Packed - byte form of a context ready for transmission or digest
type Packed []byte

// MarshalText - convert a packed context to its hex JSON form
func (packed Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(packed))
	b := make([]byte, size)
	hex.Encode(b, packed)
	return b, nil
}

// UnmarshalText - convert hex text to a packed context
func (packed *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*packed = make([]byte, size)
	_, err := hex.Decode(*packed, s)
	return err
}

// purpose tags on the wire
const (
	purposeSpend = 0x01
	purposeMint  = 0x02
)

// datum presence markers
const (
	datumAbsent  = 0x00
	datumPresent = 0x01
)

// limits to prevent memory exhaustion on unpack
const (
	maximumInputs        = 1024
	maximumOutputs       = 1024
	maximumSignatories   = 256
	maximumRedeemerBytes = 1024
	maximumDatumBytes    = 4194304
)

// Pack - canonical byte form of a context
//
// format:
//   Varint64(input count), inputs
//   Varint64(reference input count), reference inputs
//   Varint64(output count), outputs
//   packed mint
//   Varint64(signatory count), 32 key bytes each
//   purpose tag byte then out point or policy bytes
//   Varint64(redeemer length), redeemer bytes
func (context *Context) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(len(context.Inputs)))
	for _, input := range context.Inputs {
		message = appendInput(message, input)
	}

	message = append(message, util.ToVarint64(uint64(len(context.ReferenceInputs)))...)
	for _, input := range context.ReferenceInputs {
		message = appendInput(message, input)
	}

	message = append(message, util.ToVarint64(uint64(len(context.Outputs)))...)
	for _, output := range context.Outputs {
		message = appendOutput(message, output)
	}

	message = append(message, context.Mint.Pack()...)

	message = append(message, util.ToVarint64(uint64(len(context.Signatories)))...)
	for _, signatory := range context.Signatories {
		message = append(message, signatory[:]...)
	}

	switch purpose := context.Purpose.(type) {
	case Spend:
		message = append(message, purposeSpend)
		message = appendOutPoint(message, purpose.Ref)
	case Mint:
		message = append(message, purposeMint)
		message = append(message, purpose.Policy[:]...)
	default:
		return nil, fault.NotBankTransaction
	}

	message = append(message, util.ToVarint64(uint64(len(context.Redeemer)))...)
	message = append(message, context.Redeemer...)

	return message, nil
}

// TxID - digest of the packed context
func (context *Context) TxID() (digest.Digest, error) {
	packed, err := context.Pack()
	if nil != err {
		return digest.Digest{}, err
	}
	return digest.NewDigest(packed), nil
}

// UnpackContext - decode a context from a buffer
// the whole buffer must be consumed
func UnpackContext(buffer []byte) (*Context, error) {
	context := &Context{}
	n := 0

	inputs, inputsLength, err := unpackInputList(buffer[n:])
	if nil != err {
		return nil, err
	}
	n += inputsLength
	context.Inputs = inputs

	referenceInputs, referenceLength, err := unpackInputList(buffer[n:])
	if nil != err {
		return nil, err
	}
	n += referenceLength
	context.ReferenceInputs = referenceInputs

	outputCount, outputCountLength := util.FromVarint64(buffer[n:])
	if 0 == outputCountLength {
		return nil, fault.RecordTooShort
	}
	if outputCount > maximumOutputs {
		return nil, fault.InvalidCount
	}
	n += outputCountLength
	context.Outputs = make([]Output, 0, outputCount)
	for i := uint64(0); i < outputCount; i += 1 {
		output, outputLength, err := unpackOutput(buffer[n:])
		if nil != err {
			return nil, err
		}
		n += outputLength
		context.Outputs = append(context.Outputs, output)
	}

	mint, mintLength, err := token.UnpackMint(buffer[n:])
	if nil != err {
		return nil, err
	}
	n += mintLength
	context.Mint = mint

	signatoryCount, signatoryCountLength := util.FromVarint64(buffer[n:])
	if 0 == signatoryCountLength {
		return nil, fault.RecordTooShort
	}
	if signatoryCount > maximumSignatories {
		return nil, fault.InvalidCount
	}
	n += signatoryCountLength
	context.Signatories = make([]ledger.OwnerKey, 0, signatoryCount)
	for i := uint64(0); i < signatoryCount; i += 1 {
		if len(buffer[n:]) < ledger.OwnerKeyLength {
			return nil, fault.RecordTooShort
		}
		signatory := ledger.OwnerKey{}
		copy(signatory[:], buffer[n:n+ledger.OwnerKeyLength])
		n += ledger.OwnerKeyLength
		context.Signatories = append(context.Signatories, signatory)
	}

	if n >= len(buffer) {
		return nil, fault.RecordTooShort
	}
	tag := buffer[n]
	n += 1
	switch tag {
	case purposeSpend:
		ref, refLength, err := unpackOutPoint(buffer[n:])
		if nil != err {
			return nil, err
		}
		n += refLength
		context.Purpose = Spend{Ref: ref}
	case purposeMint:
		if len(buffer[n:]) < digest.Length {
			return nil, fault.RecordTooShort
		}
		policy := digest.Digest{}
		err := digest.DigestFromBytes(&policy, buffer[n:n+digest.Length])
		if nil != err {
			return nil, err
		}
		n += digest.Length
		context.Purpose = Mint{Policy: policy}
	default:
		return nil, fault.NotBankTransaction
	}

	redeemerLength, redeemerLengthBytes := util.FromVarint64(buffer[n:])
	if 0 == redeemerLengthBytes {
		return nil, fault.RecordTooShort
	}
	if redeemerLength > maximumRedeemerBytes {
		return nil, fault.RecordTooLong
	}
	n += redeemerLengthBytes
	if uint64(len(buffer[n:])) < redeemerLength {
		return nil, fault.RecordTooShort
	}
	if redeemerLength > 0 {
		context.Redeemer = make([]byte, redeemerLength)
		copy(context.Redeemer, buffer[n:n+int(redeemerLength)])
		n += int(redeemerLength)
	}

	if n != len(buffer) {
		return nil, fault.UnexpectedTrailingBytes
	}

	return context, nil
}

func appendOutPoint(buffer []byte, point OutPoint) []byte {
	buffer = append(buffer, point.TxID[:]...)
	buffer = append(buffer, util.ToVarint64(uint64(point.Index))...)
	return buffer
}

func appendOutput(buffer []byte, output Output) []byte {
	buffer = append(buffer, output.Owner[:]...)
	buffer = append(buffer, output.Value.Pack()...)
	if output.HasDatum() {
		buffer = append(buffer, datumPresent)
		buffer = append(buffer, util.ToVarint64(uint64(len(output.Datum)))...)
		buffer = append(buffer, output.Datum...)
	} else {
		buffer = append(buffer, datumAbsent)
	}
	return buffer
}

func appendInput(buffer []byte, input Input) []byte {
	buffer = appendOutPoint(buffer, input.OutPoint)
	buffer = appendOutput(buffer, input.Output)
	return buffer
}

func unpackOutPoint(buffer []byte) (OutPoint, int, error) {
	point := OutPoint{}
	if len(buffer) < digest.Length {
		return point, 0, fault.RecordTooShort
	}
	err := digest.DigestFromBytes(&point.TxID, buffer[:digest.Length])
	if nil != err {
		return point, 0, err
	}
	n := digest.Length

	index, indexLength := util.FromVarint64(buffer[n:])
	if 0 == indexLength {
		return point, 0, fault.RecordTooShort
	}
	if index > 0xffffffff {
		return point, 0, fault.InvalidCount
	}
	n += indexLength
	point.Index = uint32(index)

	return point, n, nil
}

func unpackOutput(buffer []byte) (Output, int, error) {
	output := Output{}
	if len(buffer) < ledger.OwnerKeyLength {
		return output, 0, fault.RecordTooShort
	}
	copy(output.Owner[:], buffer[:ledger.OwnerKeyLength])
	n := ledger.OwnerKeyLength

	value, valueLength, err := token.UnpackValue(buffer[n:])
	if nil != err {
		return output, 0, err
	}
	n += valueLength
	output.Value = value

	if n >= len(buffer) {
		return output, 0, fault.RecordTooShort
	}
	marker := buffer[n]
	n += 1
	switch marker {
	case datumAbsent:
	case datumPresent:
		datumLength, datumLengthBytes := util.FromVarint64(buffer[n:])
		if 0 == datumLengthBytes {
			return output, 0, fault.RecordTooShort
		}
		if datumLength > maximumDatumBytes {
			return output, 0, fault.RecordTooLong
		}
		n += datumLengthBytes
		if uint64(len(buffer[n:])) < datumLength {
			return output, 0, fault.RecordTooShort
		}
		output.Datum = make([]byte, datumLength)
		copy(output.Datum, buffer[n:n+int(datumLength)])
		n += int(datumLength)
	default:
		return output, 0, fault.NotBankTransaction
	}

	return output, n, nil
}

func unpackInput(buffer []byte) (Input, int, error) {
	input := Input{}
	point, pointLength, err := unpackOutPoint(buffer)
	if nil != err {
		return input, 0, err
	}
	n := pointLength
	input.OutPoint = point

	output, outputLength, err := unpackOutput(buffer[n:])
	if nil != err {
		return input, 0, err
	}
	n += outputLength
	input.Output = output

	return input, n, nil
}

func unpackInputList(buffer []byte) ([]Input, int, error) {
	count, countLength := util.FromVarint64(buffer)
	if 0 == countLength {
		return nil, 0, fault.RecordTooShort
	}
	if count > maximumInputs {
		return nil, 0, fault.InvalidCount
	}
	n := countLength

	inputs := make([]Input, 0, count)
	for i := uint64(0); i < count; i += 1 {
		input, inputLength, err := unpackInput(buffer[n:])
		if nil != err {
			return nil, 0, err
		}
		n += inputLength
		inputs = append(inputs, input)
	}
	return inputs, n, nil
}
