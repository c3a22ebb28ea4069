package interfaces

import "context"

// IArchiveStore keeps a copy of finished bulk archives and hands back a download link.
//
//go:generate mockgen -source=archive_store_interface.go -destination=mocks/archive_store_interface_mock.go -package=mock_interfaces

type IArchiveStore interface {
	Save(ctx context.Context, key string, content []byte) (url string, err error)
}
