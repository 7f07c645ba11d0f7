package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Kausheya2006/RaiseUrVoice/analytics"
	"github.com/Kausheya2006/RaiseUrVoice/models"
	"github.com/Kausheya2006/RaiseUrVoice/store"
)

func TestParseSeed(t *testing.T) {
	entries, err := parseSeed([]byte(`
authorities:
  - name: Ward 7 Office
    email: ward7@city.gov.in
    honourScore: 10
  - name: Water Board
    email: water@city.gov.in
`))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, seedAuthority{Name: "Ward 7 Office", Email: "ward7@city.gov.in", HonourScore: 10}, entries[0])
	assert.Equal(t, 0, entries[1].HonourScore)

	_, err = parseSeed([]byte("authorities: []"))
	assert.Error(t, err)
	_, err = parseSeed([]byte("authorities: {"))
	assert.Error(t, err)
}

type fakeCreator struct {
	emails map[string]bool
	fail   error
}

func (f *fakeCreator) Create(_ context.Context, name, email string, score int) (models.Authority, error) {
	if f.fail != nil {
		return models.Authority{}, f.fail
	}
	if f.emails[email] {
		return models.Authority{}, store.ErrConflict
	}
	f.emails[email] = true
	return models.Authority{ID: primitive.NewObjectID(), Name: name, Email: email, HonourScore: score}, nil
}

func TestSeedAuthorities(t *testing.T) {
	entries := []seedAuthority{
		{Name: "A", Email: "a@x"},
		{Name: "B", Email: "b@x"},
		{Name: "A again", Email: "a@x"},
	}

	created, skipped, err := seedAuthorities(context.Background(), &fakeCreator{emails: map[string]bool{}}, entries, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 1, skipped)

	boom := errors.New("boom")
	_, _, err = seedAuthorities(context.Background(), &fakeCreator{emails: map[string]bool{}, fail: boom}, entries, zap.NewNop())
	assert.ErrorIs(t, err, boom)
}

func TestWriteStats(t *testing.T) {
	reports := []models.IssueReport{
		{ID: primitive.NewObjectIDFromTimestamp(time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)), Issue: "fixed and resolved"},
		{ID: primitive.NewObjectIDFromTimestamp(time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)), Issue: "pothole"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeStats(&buf, analytics.Monthly(reports, time.UTC)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 14)
	assert.Equal(t, []string{"March", "2", "1", "1"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"TOTAL", "2"}, strings.Fields(lines[13]))
}

type fakeDisconnecter struct {
	err      error
	deadline time.Time
	hasDL    bool
}

func (f *fakeDisconnecter) Disconnect(ctx context.Context) error {
	f.deadline, f.hasDL = ctx.Deadline()
	return f.err
}

func TestDisconnect(t *testing.T) {
	t.Run("failure is logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		db := &fakeDisconnecter{err: errors.New("server selection timeout")}

		disconnect(db, zap.New(core))

		require.True(t, db.hasDL)
		assert.WithinDuration(t, time.Now().Add(5*time.Second), db.deadline, time.Second)
		entries := logs.FilterMessage("mongo: disconnect failed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "server selection timeout", entries[0].ContextMap()["error"])
	})

	t.Run("clean close logs nothing", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		db := &fakeDisconnecter{}

		disconnect(db, zap.New(core))

		assert.True(t, db.hasDL)
		assert.Zero(t, logs.Len())
	})
}
