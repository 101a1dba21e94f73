// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package graph

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/goccy/go-json"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

func TestEncodeBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		count   int
		wantErr error
	}{
		{name: "empty", count: 0, wantErr: ErrBatchEmpty},
		{name: "single", count: 1},
		{name: "at limit", count: MaxBatchSize},
		{name: "over limit", count: MaxBatchSize + 1, wantErr: ErrBatchTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			items := make([]models.BatchItem, tt.count)
			for i := range items {
				items[i] = NewBatchItem("PAGE", models.ResourceRequest{Kind: models.KindEvents})
			}
			payload, err := EncodeBatch(items)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("EncodeBatch: %v", err)
			}
			var decoded []models.BatchItem
			if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
				t.Fatalf("payload is not JSON: %v", err)
			}
			if len(decoded) != tt.count || decoded[0].Method != http.MethodGet {
				t.Errorf("decoded = %+v", decoded)
			}
		})
	}
}

func TestBatchTooLargeSkipsNetwork(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(http.ResponseWriter, *http.Request) { hits.Add(1) })

	items := make([]models.BatchItem, MaxBatchSize+1)
	_, err := client.Batch(context.Background(), "TOKEN", items)
	appErr := models.AsAppError(err)
	if appErr.Kind != models.ErrorKindBadRequest || appErr.Status != http.StatusBadRequest {
		t.Fatalf("got %+v", appErr)
	}
	if !errors.Is(err, ErrBatchTooLarge) {
		t.Error("error should wrap ErrBatchTooLarge")
	}
	if hits.Load() != 0 {
		t.Error("oversized batch reached the network")
	}
}

func TestClientBatch(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v23.0/" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		if r.PostForm.Get("access_token") != "TOKEN" || r.PostForm.Get("include_headers") != "false" {
			t.Errorf("unexpected form %v", r.PostForm)
		}
		var items []models.BatchItem
		if err := json.Unmarshal([]byte(r.PostForm.Get("batch")), &items); err != nil || len(items) != 2 {
			t.Errorf("batch param = %q", r.PostForm.Get("batch"))
		}
		_, _ = w.Write([]byte(`[{"code":200,"body":"{\"data\":[{\"id\":\"1\"}]}"},` +
			`{"code":400,"body":"{\"error\":{\"message\":\"bad\",\"code\":100}}"}]`))
	})

	items := []models.BatchItem{
		NewBatchItem("PAGE", models.ResourceRequest{Kind: models.KindEvents, Limit: 10}),
		NewBatchItem("PAGE", models.ResourceRequest{Kind: models.KindPhotos, Limit: 20}),
	}
	results, err := client.Batch(context.Background(), "TOKEN", items)
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}

	parsed := ParseBatchResults(results)
	if parsed[0] == nil || parsed[1] != nil {
		t.Fatalf("parsed = %v", parsed)
	}
	page, err := DecodeSlot[models.GraphEvent](parsed[0])
	if err != nil || len(page.Data) != 1 || page.Data[0].ID != "1" {
		t.Fatalf("DecodeSlot = %+v, %v", page, err)
	}
	if slotErr := SlotError(results[1]); slotErr.UpstreamCode != 100 || slotErr.Status != http.StatusBadRequest {
		t.Errorf("SlotError = %+v", slotErr)
	}
}

func TestClientBatchShortResponseIsPadded(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[null]`))
	})
	items := []models.BatchItem{
		NewBatchItem("PAGE", models.ResourceRequest{Kind: models.KindEvents}),
		NewBatchItem("PAGE", models.ResourceRequest{Kind: models.KindPhotos}),
	}
	results, err := client.Batch(context.Background(), "TOKEN", items)
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}
	if len(results) != 2 || results[0] != nil || results[1] != nil {
		t.Fatalf("results = %v", results)
	}
	if got := SlotError(results[0]); got.Status != http.StatusBadGateway {
		t.Errorf("nil slot status = %d, want 502", got.Status)
	}
}

func TestParseBatchResults(t *testing.T) {
	t.Parallel()

	results := []*models.BatchResult{
		{Code: 200, Body: `{"data":[]}`},
		nil,
		{Code: 500, Body: `{"error":{"code":1}}`},
		{Code: 200, Body: `not json`},
		{Code: 200, Body: `{"data":[{"id":"x"}]}`},
	}
	got := ParseBatchResults(results)
	if len(got) != len(results) {
		t.Fatalf("len = %d, want %d", len(got), len(results))
	}
	want := []bool{true, false, false, false, true}
	for i, ok := range want {
		if (got[i] != nil) != ok {
			t.Errorf("slot %d parsed = %v, want present=%v", i, got[i], ok)
		}
	}
}
