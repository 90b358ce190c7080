package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strings"
	"testing"

	"beervault/internal/logging"
	"beervault/internal/models"
	"beervault/internal/service"
	"beervault/internal/store/localstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func stubInputs(t *testing.T, texts []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		s := texts[i%len(texts)]
		i++
		return s, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

// testApp builds an App over an in-memory backend with one known account.
func testApp(t *testing.T) *App {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, localstore.RunMigrations(ctx, db))
	docs := localstore.New(db)

	s := localstore.NewCollectionStore(docs)
	require.NoError(t, s.SaveEntries(ctx, []models.Entry{}))
	require.NoError(t, s.SaveAccounts(ctx, []models.Account{
		{ID: "u1", Username: "alice", Email: "alice@example.com", Password: "secret1", AvatarToken: "🍺"},
	}))

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	coord := service.NewCoordinator(s, docs, log)
	require.NoError(t, coord.Start(ctx))

	return &App{coord: coord, log: log, reader: bufio.NewReader(strings.NewReader("n\n")), db: db}
}

func TestLogin_Success(t *testing.T) {
	a := testApp(t)

	restore := stubInputs(t, []string{"alice@example.com"}, []byte("secret1"))
	defer restore()
	a.reader = bufio.NewReader(strings.NewReader("n\n")) // remember? -> no

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(🍺 alice)", a.status())
}

func TestLogin_InvalidCredentialsStaysInline(t *testing.T) {
	a := testApp(t)

	restore := stubInputs(t, []string{"alice@example.com"}, []byte("wrong"))
	defer restore()
	a.reader = bufio.NewReader(strings.NewReader("n\n"))

	// a mismatch is reported to the user, not returned as an error
	require.NoError(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.status())
}

func TestRegister_ThenLogin(t *testing.T) {
	a := testApp(t)
	ctx := context.Background()

	restore := stubInputs(t, []string{"carol", "carol@example.com"}, []byte("longenough"))
	defer restore()

	require.NoError(t, a.Register(ctx))
	assert.False(t, a.isLoggedIn(), "registration does not sign in")

	restore2 := stubInputs(t, []string{"carol@example.com"}, []byte("longenough"))
	defer restore2()
	a.reader = bufio.NewReader(strings.NewReader("n\n"))

	require.NoError(t, a.Login(ctx))
	assert.True(t, a.isLoggedIn())
}

func TestRegister_ValidationShownInline(t *testing.T) {
	a := testApp(t)

	// duplicate email must not error out of the prompt loop
	restore := stubInputs(t, []string{"someone", "alice@example.com"}, []byte("longenough"))
	defer restore()

	require.NoError(t, a.Register(context.Background()))
	assert.Len(t, a.coord.ListAccounts(), 1)
}

func TestLogout(t *testing.T) {
	a := testApp(t)
	ctx := context.Background()

	restore := stubInputs(t, []string{"alice@example.com"}, []byte("secret1"))
	defer restore()
	a.reader = bufio.NewReader(strings.NewReader("y\n")) // remember

	require.NoError(t, a.Login(ctx))
	require.True(t, a.isLoggedIn())

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
}
