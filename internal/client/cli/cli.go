// Package cli реализует команды консольного клиента трекера привычек.
// Команды — тонкие обертки над сервисами: весь доменный код живет
// в internal/habit и клиентских сервисах, здесь только разбор аргументов
// и форматирование вывода.
package cli

import (
	"fmt"

	"github.com/iudanet/consistency/internal/client/api"
	"github.com/iudanet/consistency/internal/client/habits"
	"github.com/iudanet/consistency/internal/client/identity"
	"github.com/iudanet/consistency/internal/client/iocli"
	"github.com/iudanet/consistency/internal/client/storage"
	"github.com/iudanet/consistency/internal/client/sync"
)

type Cli struct {
	io       iocli.IO
	remote   *api.Client
	habits   *habits.Service
	identity *identity.Service
	sync     *sync.Service
	meta     storage.MetadataStorage
}

// New creates a new CLI
func New(io iocli.IO, remote *api.Client, habitsSvc *habits.Service, identitySvc *identity.Service, syncSvc *sync.Service, meta storage.MetadataStorage) *Cli {
	return &Cli{
		io:       io,
		remote:   remote,
		habits:   habitsSvc,
		identity: identitySvc,
		sync:     syncSvc,
		meta:     meta,
	}
}

func PrintUsage() {
	fmt.Print(usageText)
}
