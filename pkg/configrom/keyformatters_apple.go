package configrom

const keyIDAppleISightRegisterFile = 0x00

// appleISightAudioKeyFormatters covers the Apple iSight audio unit's
// sole CSR-offset entry, its register file.
var appleISightAudioKeyFormatters = []KeyFormatter{
	{KeyType: KeyTypeCSROffset, KeyID: keyIDAppleISightRegisterFile, Name: "register file"},
}

// appleISightIrisKeyFormatters covers the Apple iSight iris unit's
// sole CSR-offset entry, its status address register.
var appleISightIrisKeyFormatters = []KeyFormatter{
	{KeyType: KeyTypeCSROffset, KeyID: keyIDAppleISightRegisterFile, Name: "Iris Status Address register"},
}
