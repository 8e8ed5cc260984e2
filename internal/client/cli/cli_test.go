package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/consistency/internal/client/api"
	"github.com/iudanet/consistency/internal/client/habits"
	"github.com/iudanet/consistency/internal/client/identity"
	"github.com/iudanet/consistency/internal/client/storage/boltdb"
	syncsvc "github.com/iudanet/consistency/internal/client/sync"
	"github.com/iudanet/consistency/internal/dateutil"
)

// fakeIO записывает вывод команд и отдает заранее заданный ввод
type fakeIO struct {
	out     strings.Builder
	inputs  []string
	secrets []string
}

func (f *fakeIO) Println(a ...any) {
	f.out.WriteString(fmt.Sprintln(a...))
}

func (f *fakeIO) Printf(format string, a ...any) {
	f.out.WriteString(fmt.Sprintf(format, a...))
}

func (f *fakeIO) ReadInput(string) (string, error) {
	if len(f.inputs) == 0 {
		return "", fmt.Errorf("no input queued")
	}
	input := f.inputs[0]
	f.inputs = f.inputs[1:]
	return input, nil
}

func (f *fakeIO) ReadSecret(string) (string, error) {
	if len(f.secrets) == 0 {
		return "", fmt.Errorf("no secret queued")
	}
	secret := f.secrets[0]
	f.secrets = f.secrets[1:]
	return secret, nil
}

func newTestCli(t *testing.T) (*Cli, *fakeIO) {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "cli_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	remote := api.NewClient("", "") // синхронизация не настроена
	habitsSvc := habits.NewService(store, logger)
	identitySvc := identity.NewService(store)
	syncSvc := syncsvc.NewService(remote, store, store, store, logger)

	io := &fakeIO{}
	return New(io, remote, habitsSvc, identitySvc, syncSvc, store), io
}

func TestRun_UnknownCommand(t *testing.T) {
	cli, _ := newTestCli(t)

	err := cli.Run(context.Background(), "bogus", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	cli, io := newTestCli(t)

	// Имя из нескольких аргументов склеивается
	require.NoError(t, cli.Run(ctx, "add", []string{"утренняя", "зарядка"}))
	assert.Contains(t, io.out.String(), `"утренняя зарядка"`)

	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "list", nil))
	output := io.out.String()
	assert.Contains(t, output, "Habits (1)")
	assert.Contains(t, output, "[ ] утренняя зарядка")
}

func TestAdd_MissingName(t *testing.T) {
	cli, _ := newTestCli(t)

	err := cli.Run(context.Background(), "add", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing habit name")
}

func TestDoneAndUndo(t *testing.T) {
	ctx := context.Background()
	cli, io := newTestCli(t)
	require.NoError(t, cli.Run(ctx, "add", []string{"чтение"}))

	// Отметка за сегодня по имени
	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "done", []string{"чтение"}))
	assert.Contains(t, io.out.String(), `Marked "чтение" completed`)

	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "list", nil))
	assert.Contains(t, io.out.String(), "[x] чтение")

	// Снятие отметки за конкретную дату
	today := dateutil.DateKey(time.Now())
	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "undo", []string{"чтение", today}))
	assert.Contains(t, io.out.String(), `Removed completion for "чтение"`)

	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "list", nil))
	assert.Contains(t, io.out.String(), "[ ] чтение")
}

func TestDone_InvalidDate(t *testing.T) {
	ctx := context.Background()
	cli, _ := newTestCli(t)
	require.NoError(t, cli.Run(ctx, "add", []string{"чтение"}))

	err := cli.Run(ctx, "done", []string{"чтение", "03/07/2024"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date key")
}

func TestDelete_Confirmed(t *testing.T) {
	ctx := context.Background()
	cli, io := newTestCli(t)
	require.NoError(t, cli.Run(ctx, "add", []string{"чтение"}))

	io.inputs = []string{"y"}
	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "delete", []string{"чтение"}))
	assert.Contains(t, io.out.String(), `Deleted habit "чтение"`)

	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "list", nil))
	assert.Contains(t, io.out.String(), "No habits yet")
}

func TestDelete_Cancelled(t *testing.T) {
	ctx := context.Background()
	cli, io := newTestCli(t)
	require.NoError(t, cli.Run(ctx, "add", []string{"чтение"}))

	io.inputs = []string{""}
	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "delete", []string{"чтение"}))
	assert.Contains(t, io.out.String(), "Cancelled")

	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "list", nil))
	assert.Contains(t, io.out.String(), "Habits (1)")
}

func TestRename(t *testing.T) {
	ctx := context.Background()
	cli, io := newTestCli(t)
	require.NoError(t, cli.Run(ctx, "add", []string{"старое"}))

	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "rename", []string{"старое", "новое", "имя"}))
	assert.Contains(t, io.out.String(), `"новое имя"`)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	cli, io := newTestCli(t)
	require.NoError(t, cli.Run(ctx, "add", []string{"чтение"}))
	require.NoError(t, cli.Run(ctx, "done", []string{"чтение"}))

	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "stats", nil))
	output := io.out.String()
	assert.Contains(t, output, "чтение")
	assert.Contains(t, output, "Completed:  1 of 1 day(s) (100%)")
	assert.Contains(t, output, "Streak:     1 day(s)")
}

func TestSeedLifecycle(t *testing.T) {
	ctx := context.Background()
	cli, io := newTestCli(t)

	// Без фразы show сообщает об отсутствии
	require.NoError(t, cli.Run(ctx, "seed", []string{"show"}))
	assert.Contains(t, io.out.String(), "No seed phrase set")

	// Ввод существующей фразы через скрытый ввод
	io.secrets = []string{"Amber-Atlas Quiet-Ocean"}
	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "seed", []string{"set"}))
	output := io.out.String()
	assert.Contains(t, output, "Account code:")
	assert.Regexp(t, `\d{3}•\d{3}`, output)

	// show печатает код аккаунта, но не фразу
	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "seed", []string{"show"}))
	assert.Contains(t, io.out.String(), "Account code:")
	assert.NotContains(t, strings.ToLower(io.out.String()), "amber-atlas")

	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "seed", []string{"clear"}))
	assert.Contains(t, io.out.String(), "Seed phrase removed")

	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "seed", []string{"show"}))
	assert.Contains(t, io.out.String(), "No seed phrase set")
}

func TestSeedGenerate(t *testing.T) {
	ctx := context.Background()
	cli, io := newTestCli(t)

	require.NoError(t, cli.Run(ctx, "seed", []string{"generate", "8"}))
	output := io.out.String()
	assert.Contains(t, output, "Your new seed phrase:")
	assert.Contains(t, output, "Account code:")

	// Фраза запомнена сразу
	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "seed", []string{"show"}))
	assert.Contains(t, io.out.String(), "Account code:")
}

func TestSync_NotConfigured(t *testing.T) {
	ctx := context.Background()
	cli, io := newTestCli(t)

	require.NoError(t, cli.Run(ctx, "sync", nil))
	assert.Contains(t, io.out.String(), "Sync server is not configured")
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	cli, io := newTestCli(t)
	require.NoError(t, cli.Run(ctx, "add", []string{"чтение"}))
	require.NoError(t, cli.Run(ctx, "done", []string{"чтение"}))

	io.out.Reset()
	require.NoError(t, cli.Run(ctx, "status", nil))
	output := io.out.String()
	assert.Contains(t, output, "Habits: 1")
	assert.Contains(t, output, "Completions: 1")
	assert.Contains(t, output, "Seed phrase: not set")
	assert.Contains(t, output, "Sync server: not configured")
	assert.Contains(t, output, "Last local change:")
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "b692f5c0", shortID("b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5"))
	assert.Equal(t, "plain", shortID("plain"))
}
