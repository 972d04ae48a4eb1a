package mode

func encryptECB(b Block, dst, src []byte) error {
	bs := b.BlockSize()
	for i := 0; i < len(src); i += bs {
		if err := b.Encrypt(dst[i:i+bs], src[i:i+bs]); err != nil {
			return err
		}
	}
	return nil
}

func decryptECB(b Block, dst, src []byte) error {
	bs := b.BlockSize()
	for i := 0; i < len(src); i += bs {
		if err := b.Decrypt(dst[i:i+bs], src[i:i+bs]); err != nil {
			return err
		}
	}
	return nil
}
