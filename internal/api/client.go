// Package api implements the HTTP client for the document-chat server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/malonaz/docchat/internal/file"
)

// uploadFieldName is the multipart field the server reads file parts from.
const uploadFieldName = "files"

// Error is a non-2xx response from the server. The body, when present, is the
// server's own message and is surfaced to the user verbatim.
type Error struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if strings.TrimSpace(e.Body) != "" {
		return e.Body
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// Client talks to the document-chat server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient instantiates a client against the given base URL. A zero timeout
// leaves requests without a client-side deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CreateChat asks the server for a new chat session and returns its id.
func (c *Client) CreateChat(ctx context.Context) (string, error) {
	body, err := c.post(ctx, "/chat/new", "application/json", nil)
	if err != nil {
		return "", err
	}

	response := &struct {
		ChatID string `json:"chat_id"`
	}{}
	if err := json.Unmarshal(body, response); err != nil {
		return "", errors.Wrap(err, "unmarshaling chat id")
	}
	if response.ChatID == "" {
		return "", errors.New("server returned an empty chat id")
	}
	return response.ChatID, nil
}

// UploadDocuments sends the given files to the server for ingestion into the
// given chat session. All files travel in a single multipart request: the batch
// is accepted or rejected as a whole.
func (c *Client) UploadDocuments(ctx context.Context, chatID string, files []*file.File) error {
	if len(files) == 0 {
		return errors.New("no files to upload")
	}

	buffer := &bytes.Buffer{}
	writer := multipart.NewWriter(buffer)
	if err := writer.WriteField("chat_id", chatID); err != nil {
		return errors.Wrap(err, "writing chat id field")
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(uploadFieldName, f.Name())
		if err != nil {
			return errors.Wrap(err, "creating form file")
		}
		if _, err := part.Write(f.Content); err != nil {
			return errors.Wrap(err, "writing file content")
		}
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "closing multipart writer")
	}

	_, err := c.post(ctx, "/upload", writer.FormDataContentType(), buffer)
	return err
}

// AskRequest carries one question to the server.
type AskRequest struct {
	ChatID    string `json:"chat_id"`
	Question  string `json:"question"`
	DeepThink bool   `json:"deep_think"`
}

// Answer is the settled response to a question. Its concrete type is keyed by
// the request's DeepThink flag: *DirectAnswer or *DeepThinkAnswer.
type Answer interface {
	isAnswer()
}

// DirectAnswer is the single-pass answer shape.
type DirectAnswer struct {
	Text string
}

func (*DirectAnswer) isAnswer() {}

// DeepThinkAnswer is the three-stage self-critique answer shape.
type DeepThinkAnswer struct {
	Initial  string
	Critique string
	Final    string
}

func (*DeepThinkAnswer) isAnswer() {}

// Ask submits a question against a chat session and decodes the response into
// the answer shape selected by the request's mode.
func (c *Client) Ask(ctx context.Context, request *AskRequest) (Answer, error) {
	requestBytes, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling request")
	}

	body, err := c.post(ctx, "/chat", "application/json", bytes.NewReader(requestBytes))
	if err != nil {
		return nil, err
	}

	response := &struct {
		Answer        string `json:"answer"`
		InitialAnswer string `json:"initial_answer"`
		Critique      string `json:"critique"`
	}{}
	if err := json.Unmarshal(body, response); err != nil {
		return nil, errors.Wrap(err, "unmarshaling answer")
	}

	if !request.DeepThink {
		if response.Answer == "" {
			return nil, errors.New("server returned no answer")
		}
		return &DirectAnswer{Text: response.Answer}, nil
	}

	if response.InitialAnswer == "" || response.Critique == "" || response.Answer == "" {
		return nil, errors.New("server returned an incomplete deep-think answer")
	}
	return &DeepThinkAnswer{
		Initial:  response.InitialAnswer,
		Critique: response.Critique,
		Final:    response.Answer,
	}, nil
}

// post sends a request and returns the response body, converting any non-2xx
// status into an *Error carrying the server's message.
func (c *Client) post(ctx context.Context, path, contentType string, body io.Reader) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "creating request")
	}
	request.Header.Set("Content-Type", contentType)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, errors.Wrap(err, "sending request")
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response body")
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &Error{StatusCode: response.StatusCode, Body: string(responseBytes)}
	}
	return responseBytes, nil
}
