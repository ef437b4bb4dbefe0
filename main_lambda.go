//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type optimizeRequest struct {
	Candidates  json.RawMessage `json:"candidates"`
	Count       int             `json:"count"`
	BlackPoints int             `json:"blackPoints"`
	Loser       string          `json:"loser"`
}

type squadEntry struct {
	Name  string  `json:"name"`
	Black int     `json:"black"`
	Score float64 `json:"score"`
	Loser bool    `json:"loser,omitempty"`
}

type optimizeResult struct {
	Squad      []squadEntry      `json:"squad"`
	TotalScore float64           `json:"totalScore"`
	TotalBlack int               `json:"totalBlack"`
	Jokers     []JokerSuggestion `json:"jokers"`
	TimeMs     int64             `json:"timeMs"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req optimizeRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}
	if len(req.Candidates) == 0 {
		return errResp(400, "missing candidates field")
	}
	if req.Count == 0 {
		req.Count = 14
	}
	if req.BlackPoints == 0 {
		req.BlackPoints = 20
	}

	cfg := DefaultScoreConfig()

	players, err := parseCandidates(string(req.Candidates))
	if err != nil {
		return errResp(400, err.Error())
	}
	applyScores(players, cfg)

	start := time.Now()
	sel, err := NewSelector(players, req.Count, req.BlackPoints, req.Loser, cfg).Select()
	if err != nil {
		return errResp(422, err.Error())
	}

	resp := optimizeResult{
		TotalScore: sel.TotalScore,
		TotalBlack: sel.TotalBlack,
		Jokers:     jokerSuggestions(players, cfg, 5),
		TimeMs:     time.Since(start).Milliseconds(),
	}
	for _, p := range sel.Squad {
		resp.Squad = append(resp.Squad, squadEntry{
			Name: p.Name, Black: p.Black, Score: p.Score, Loser: p.Loser,
		})
	}

	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
