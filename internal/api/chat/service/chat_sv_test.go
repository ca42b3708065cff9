package chatService

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gis-assistant/internal/api/chat"
	chatRepository "gis-assistant/internal/api/chat/repository"
	"gis-assistant/internal/entity"
	"gis-assistant/pkg/audio"
	"gis-assistant/pkg/geocode"
	"gis-assistant/pkg/intent"
	"gis-assistant/pkg/utils"
)

// fakeStore backs the fake repository. Turns appended inside a transaction
// stay pending until Commit, so tests can observe pair atomicity.
type fakeStore struct {
	sessions  map[string]entity.ChatSession
	turns     []entity.ChatTurn
	pending   []entity.ChatTurn
	appendErr error
	commits   int
	rollbacks int
}

func newFakeStore(sessionIDs ...string) *fakeStore {
	store := &fakeStore{sessions: map[string]entity.ChatSession{}}
	for _, id := range sessionIDs {
		store.sessions[id] = entity.ChatSession{ID: id}
	}
	return store
}

type fakeRepository struct {
	store *fakeStore
}

func (r *fakeRepository) NewClient(tx bool) (chatRepository.Client, error) {
	store := r.store
	committed := false

	client := chatRepository.Client{
		Sessions: &fakeSessionRepo{store: store},
		Turns:    &fakeTurnRepo{store: store, buffered: tx},
		Commit: func() error {
			committed = true
			store.commits++
			store.turns = append(store.turns, store.pending...)
			store.pending = nil
			return nil
		},
		Rollback: func() error {
			if !committed {
				store.rollbacks++
				store.pending = nil
			}
			return nil
		},
	}
	if !tx {
		client.Commit = func() error { return nil }
		client.Rollback = func() error { return nil }
	}
	return client, nil
}

type fakeSessionRepo struct {
	store *fakeStore
}

func (r *fakeSessionRepo) CreateSession(_ context.Context, session entity.ChatSession) error {
	r.store.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) GetSessionByID(_ context.Context, id string) (entity.ChatSession, error) {
	session, ok := r.store.sessions[id]
	if !ok {
		return entity.ChatSession{}, chat.ErrSessionNotFound
	}
	return session, nil
}

func (r *fakeSessionRepo) TouchSession(_ context.Context, id string) error {
	return nil
}

type fakeTurnRepo struct {
	store    *fakeStore
	buffered bool
}

func (r *fakeTurnRepo) AppendTurn(_ context.Context, turn entity.ChatTurn) error {
	if r.store.appendErr != nil {
		return r.store.appendErr
	}
	if r.buffered {
		r.store.pending = append(r.store.pending, turn)
	} else {
		r.store.turns = append(r.store.turns, turn)
	}
	return nil
}

func (r *fakeTurnRepo) ListTurnsBySessionID(_ context.Context, sessionID string) ([]entity.ChatTurn, error) {
	var turns []entity.ChatTurn
	for _, turn := range r.store.turns {
		if turn.SessionID == sessionID {
			turns = append(turns, turn)
		}
	}
	return turns, nil
}

type fakeGeocoder struct {
	points []geocode.Point
	err    error
	calls  int
}

func (g *fakeGeocoder) FindPOI(_ context.Context, category intent.PoiCategory, region string) ([]geocode.Point, error) {
	g.calls++
	return g.points, g.err
}

type fakeTranscriber struct {
	text string
	err  error
}

func (t *fakeTranscriber) Transcribe(_ context.Context, filePath string) (string, error) {
	return t.text, t.err
}

func newTestService(store *fakeStore, geocoder *fakeGeocoder, transcriber *fakeTranscriber) IChatService {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return New(
		log,
		&fakeRepository{store: store},
		intent.NewClassifier(),
		geocoder,
		transcriber,
		utils.New(),
	)
}

func decodeTextPayload(t *testing.T, raw json.RawMessage) chat.TextPayload {
	t.Helper()
	var payload chat.TextPayload
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func TestCreateSession(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store, &fakeGeocoder{}, &fakeTranscriber{})

	resp, err := service.CreateSession(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Contains(t, store.sessions, resp.ID)
}

func TestProcessMessage_AppendsTurnPair(t *testing.T) {
	store := newFakeStore("session-1")
	service := newTestService(store, &fakeGeocoder{}, &fakeTranscriber{})

	resp, err := service.ProcessMessage(context.Background(), "session-1", chat.MessageRequest{Text: "hi"})
	require.NoError(t, err)

	require.Len(t, store.turns, 2)
	assert.Equal(t, 1, store.commits)

	userTurn, botTurn := store.turns[0], store.turns[1]
	assert.Equal(t, entity.RoleUser, userTurn.Role)
	assert.Equal(t, entity.KindText, userTurn.Kind)
	assert.Equal(t, "hi", decodeTextPayload(t, userTurn.Payload).Message)

	assert.Equal(t, entity.RoleBot, botTurn.Role)
	assert.Equal(t, entity.KindText, botTurn.Kind)

	reply, ok := intent.GreetingResponse("hi")
	require.True(t, ok)
	assert.Equal(t, reply, decodeTextPayload(t, botTurn.Payload).Message)

	assert.Equal(t, botTurn.ID, resp.BotTurn.ID)
	assert.Empty(t, resp.Transcript)
}

func TestProcessMessage_ResponseKinds(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantKind entity.ResponseKind
	}{
		{"greeting", "hello", entity.KindText},
		{"help", "what questions can I ask", entity.KindQuestionList},
		{"disaster", "show floods in Assam", entity.KindDisasterMap},
		{"poi", "hospitals in Kathmandu", entity.KindPoiMap},
		{"global hazard", "global hazard map", entity.KindGlobalHazardMap},
		{"fallback", "asdkfj random text", entity.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore("session-1")
			geocoder := &fakeGeocoder{points: []geocode.Point{{Lat: 27.7, Lon: 85.3, Label: "Bir Hospital"}}}
			service := newTestService(store, geocoder, &fakeTranscriber{})

			resp, err := service.ProcessMessage(context.Background(), "session-1", chat.MessageRequest{Text: tt.text})
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, resp.BotTurn.Kind)
		})
	}
}

func TestProcessMessage_FallbackMessage(t *testing.T) {
	store := newFakeStore("session-1")
	service := newTestService(store, &fakeGeocoder{}, &fakeTranscriber{})

	resp, err := service.ProcessMessage(context.Background(), "session-1", chat.MessageRequest{Text: "asdkfj random text"})
	require.NoError(t, err)

	assert.Equal(t, intent.FallbackMessage, decodeTextPayload(t, resp.BotTurn.Payload).Message)
}

func TestProcessMessage_PoiEmptyResult(t *testing.T) {
	store := newFakeStore("session-1")
	service := newTestService(store, &fakeGeocoder{points: nil}, &fakeTranscriber{})

	resp, err := service.ProcessMessage(context.Background(), "session-1", chat.MessageRequest{Text: "hospitals in Kathmandu"})
	require.NoError(t, err)

	assert.Equal(t, entity.KindText, resp.BotTurn.Kind)
	payload := decodeTextPayload(t, resp.BotTurn.Payload)
	assert.Equal(t, "No data found for hospital in kathmandu.", payload.Message)
	assert.True(t, payload.Warning)

	// The failed lookup still records the full turn pair.
	assert.Len(t, store.turns, 2)
}

func TestProcessMessage_PoiRegionNotFound(t *testing.T) {
	store := newFakeStore("session-1")
	service := newTestService(store, &fakeGeocoder{err: geocode.ErrPlaceNotFound}, &fakeTranscriber{})

	resp, err := service.ProcessMessage(context.Background(), "session-1", chat.MessageRequest{Text: "schools in Atlantis"})
	require.NoError(t, err)

	payload := decodeTextPayload(t, resp.BotTurn.Payload)
	assert.Equal(t, "No data found for school in atlantis.", payload.Message)
	assert.True(t, payload.Warning)
}

func TestProcessMessage_PoiLookupFailure(t *testing.T) {
	store := newFakeStore("session-1")
	service := newTestService(store, &fakeGeocoder{err: errors.New("upstream timeout")}, &fakeTranscriber{})

	resp, err := service.ProcessMessage(context.Background(), "session-1", chat.MessageRequest{Text: "atms in Delhi"})
	require.NoError(t, err)

	payload := decodeTextPayload(t, resp.BotTurn.Payload)
	assert.Equal(t, "Error retrieving map data for atm in delhi.", payload.Message)
	assert.True(t, payload.Warning)
}

func TestProcessMessage_UnknownSession(t *testing.T) {
	store := newFakeStore()
	service := newTestService(store, &fakeGeocoder{}, &fakeTranscriber{})

	_, err := service.ProcessMessage(context.Background(), "missing", chat.MessageRequest{Text: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, chat.ErrSessionNotFound)
	assert.Empty(t, store.turns)
}

func TestProcessMessage_AppendFailureRollsBack(t *testing.T) {
	store := newFakeStore("session-1")
	store.appendErr = errors.New("disk full")
	service := newTestService(store, &fakeGeocoder{}, &fakeTranscriber{})

	_, err := service.ProcessMessage(context.Background(), "session-1", chat.MessageRequest{Text: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, chat.ErrTurnNotRecorded)

	assert.Zero(t, store.commits)
	assert.Equal(t, 1, store.rollbacks)
	assert.Empty(t, store.turns)
}

func TestGetHistory(t *testing.T) {
	store := newFakeStore("session-1")
	service := newTestService(store, &fakeGeocoder{}, &fakeTranscriber{})

	_, err := service.ProcessMessage(context.Background(), "session-1", chat.MessageRequest{Text: "hi"})
	require.NoError(t, err)
	_, err = service.ProcessMessage(context.Background(), "session-1", chat.MessageRequest{Text: "show floods in Assam"})
	require.NoError(t, err)

	history, err := service.GetHistory(context.Background(), "session-1")
	require.NoError(t, err)

	require.Len(t, history, 4)
	assert.Equal(t, entity.RoleUser, history[0].Role)
	assert.Equal(t, entity.RoleBot, history[1].Role)
	assert.Equal(t, entity.KindDisasterMap, history[3].Kind)

	_, err = service.GetHistory(context.Background(), "missing")
	assert.ErrorIs(t, err, chat.ErrSessionNotFound)
}

func TestTestIntent(t *testing.T) {
	service := newTestService(newFakeStore(), &fakeGeocoder{}, &fakeTranscriber{})

	resp, err := service.TestIntent(context.Background(), chat.IntentTestRequest{Text: "floods in Assam"})
	require.NoError(t, err)

	assert.Equal(t, "floods in Assam", resp.Input)
	assert.Equal(t, intent.KindDisasterQuery, resp.Intent.Kind)
	assert.Equal(t, "assam", resp.Intent.Region)
}

func makeAudioFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("audio", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["audio"][0]
}

func TestProcessVoice(t *testing.T) {
	t.Run("transcript flows through the text pipeline", func(t *testing.T) {
		store := newFakeStore("session-1")
		service := newTestService(store, &fakeGeocoder{}, &fakeTranscriber{text: "show floods in Assam"})

		req := chat.VoiceRequest{AudioFile: makeAudioFileHeader(t, "question.wav", []byte("audio-bytes"))}
		resp, err := service.ProcessVoice(context.Background(), "session-1", req)
		require.NoError(t, err)

		assert.Equal(t, "show floods in Assam", resp.Transcript)
		assert.Equal(t, entity.KindDisasterMap, resp.BotTurn.Kind)

		require.Len(t, store.turns, 2)
		assert.Equal(t, "show floods in Assam", decodeTextPayload(t, store.turns[0].Payload).Message)
	})

	t.Run("no speech appends nothing", func(t *testing.T) {
		store := newFakeStore("session-1")
		service := newTestService(store, &fakeGeocoder{}, &fakeTranscriber{err: audio.ErrNoSpeech})

		req := chat.VoiceRequest{AudioFile: makeAudioFileHeader(t, "silence.wav", []byte("audio-bytes"))}
		_, err := service.ProcessVoice(context.Background(), "session-1", req)

		assert.ErrorIs(t, err, chat.ErrNoSpeechDetected)
		assert.Empty(t, store.turns)
	})

	t.Run("unsupported format is rejected before transcription", func(t *testing.T) {
		store := newFakeStore("session-1")
		service := newTestService(store, &fakeGeocoder{}, &fakeTranscriber{text: "hi"})

		req := chat.VoiceRequest{AudioFile: makeAudioFileHeader(t, "notes.txt", []byte("not audio"))}
		_, err := service.ProcessVoice(context.Background(), "session-1", req)

		assert.ErrorIs(t, err, chat.ErrInvalidAudioFile)
		assert.Empty(t, store.turns)
	})
}

func TestMapTranscriptionError(t *testing.T) {
	assert.ErrorIs(t, mapTranscriptionError(audio.ErrNoSpeech), chat.ErrNoSpeechDetected)
	assert.ErrorIs(t, mapTranscriptionError(audio.ErrNotUnderstood), chat.ErrSpeechNotUnderstood)
	assert.ErrorIs(t, mapTranscriptionError(audio.ErrServiceUnavailable), chat.ErrSpeechServiceFailed)
	assert.ErrorIs(t, mapTranscriptionError(errors.New("boom")), chat.ErrSpeechServiceFailed)
}
