//go:build !unix

package block

func mapAnon(int) ([]byte, error) {
	return nil, ErrMapUnsupported
}

func unmap([]byte) error {
	return nil
}
