package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/apptitude/internal/api"
	"github.com/abhisek/apptitude/internal/quiz"
)

func questionServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestGetQuestion_OK(t *testing.T) {
	c := questionServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/get_question", r.URL.Path)

		var req api.QuestionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, 3, req.Level)

		env, err := api.OK(api.QuestionPayload{
			Question:    "What is 7 * 8?",
			Answer:      "56",
			Explanation: "7 * 8 = 56",
		})
		require.NoError(t, err)
		json.NewEncoder(w).Encode(env)
	})

	q, err := c.GetQuestion(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "What is 7 * 8?", q.Text)
	assert.Equal(t, "56", q.Answer)
}

func TestGetQuestion_StringEncodedData(t *testing.T) {
	c := questionServer(t, func(w http.ResponseWriter, r *http.Request) {
		// Data serialized twice, as the original backend produced.
		w.Write([]byte(`{"status":"ok","data":"{\"question\":\"1+1?\",\"answer\":\"2\",\"explanation\":\"count\"}"}`))
	})

	q, err := c.GetQuestion(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "1+1?", q.Text)
}

func TestGetQuestion_ErrorEnvelope(t *testing.T) {
	c := questionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(api.Error("model unavailable"))
	})

	_, err := c.GetQuestion(context.Background(), 2)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, err.Error(), "model unavailable")
}

func TestGetQuestion_IncompletePayload(t *testing.T) {
	c := questionServer(t, func(w http.ResponseWriter, r *http.Request) {
		env, err := api.OK(api.QuestionPayload{Explanation: "only this"})
		require.NoError(t, err)
		json.NewEncoder(w).Encode(env)
	})

	_, err := c.GetQuestion(context.Background(), 1)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	var fmtErr *api.FormatError
	assert.ErrorAs(t, err, &fmtErr)
}

func TestGetQuestion_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	c := New(srv.URL)

	_, err := c.GetQuestion(context.Background(), 1)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
}

func TestCheckAnswer_OK(t *testing.T) {
	c := questionServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/check_answer", r.URL.Path)

		var req api.AnswerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "What is 7 * 8?", req.Question)
		assert.Equal(t, "56", req.UserAnswer)
		assert.Equal(t, "56", req.CorrectAnswer)

		env, err := api.OK(api.VerdictPayload{
			IsCorrect:   true,
			Feedback:    "Correct! Well done!",
			Explanation: "7 * 8 = 56",
		})
		require.NoError(t, err)
		json.NewEncoder(w).Encode(env)
	})

	q := &quiz.Question{Text: "What is 7 * 8?", Answer: "56", Explanation: "7 * 8 = 56"}
	v, err := c.CheckAnswer(context.Background(), q, "56")
	require.NoError(t, err)
	assert.True(t, v.IsCorrect)
	assert.Equal(t, "Correct! Well done!", v.Feedback)
}

func TestCheckAnswer_MalformedDataIsGradingError(t *testing.T) {
	c := questionServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok","data":"not parseable as a verdict"}`))
	})

	q := &quiz.Question{Text: "q", Answer: "1"}
	_, err := c.CheckAnswer(context.Background(), q, "1")
	var ge *GradingError
	require.ErrorAs(t, err, &ge)
	var fmtErr *api.FormatError
	assert.ErrorAs(t, err, &fmtErr)
}

func TestCheckAnswer_ContextCancellation(t *testing.T) {
	c := questionServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	q := &quiz.Question{Text: "q", Answer: "1"}
	_, err := c.CheckAnswer(ctx, q, "1")
	var ge *GradingError
	require.ErrorAs(t, err, &ge)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewWithLogger_RecordsExchanges(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env, err := api.OK(api.QuestionPayload{Question: "q", Answer: "1"})
		require.NoError(t, err)
		json.NewEncoder(w).Encode(env)
	}))
	t.Cleanup(srv.Close)

	core, logs := observer.New(zapcore.DebugLevel)
	c := NewWithLogger(srv.URL, zap.New(core))

	_, err := c.GetQuestion(context.Background(), 1)
	require.NoError(t, err)

	entries := logs.FilterMessage("exchange completed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/get_question", entries[0].ContextMap()["path"])
}
