// Command simulate drives a synthetic walking session against a running
// server: it mints a device token, starts a session, streams gait-like
// accelerometer batches through the background collector, and stops with
// a slightly offset end location.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jengzang/walktrack-backend-go/internal/collector"
	"github.com/jengzang/walktrack-backend-go/internal/models"
)

type client struct {
	base  string
	token string
	http  *http.Client
}

func (c *client) post(path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.base+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return err
	}
	return json.Unmarshal(envelope.Data, out)
}

func main() {
	server := flag.String("server", "http://localhost:8080", "server base URL")
	device := flag.String("device", "simulator", "device id for the token")
	lat := flag.Float64("lat", 51.5074, "start latitude")
	lng := flag.Float64("lng", -0.1278, "start longitude")
	cadence := flag.Float64("cadence", 1.8, "steps per second")
	duration := flag.Duration("duration", 30*time.Second, "walk duration")
	flag.Parse()

	c := &client{base: *server, http: &http.Client{Timeout: 10 * time.Second}}

	var tokenResp struct {
		Token string `json:"token"`
	}
	if err := c.post("/api/v1/auth/token", map[string]string{"deviceId": *device}, &tokenResp); err != nil {
		log.Fatal("Failed to get token:", err)
	}
	c.token = tokenResp.Token

	startFix := models.LocationFix{Latitude: lat, Longitude: lng}
	if err := c.post("/api/v1/sessions/start", startFix, nil); err != nil {
		log.Fatal("Failed to start session:", err)
	}
	log.Printf("Session started at (%.4f, %.4f), walking for %v", *lat, *lng, *duration)

	push := func(batch []models.AccelSample) {
		if err := c.post("/api/v1/sessions/samples", models.SampleBatch{Samples: batch}, nil); err != nil {
			log.Printf("Failed to push batch: %v", err)
		}
	}

	source := collector.NewWalkSource(*cadence)
	coll := collector.New(source, push, 100*time.Millisecond, 20)

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()
	coll.Start(ctx)
	<-ctx.Done()
	coll.Stop()

	// End a short stroll north of the start.
	endLat := *lat + 0.002
	endFix := models.LocationFix{Latitude: &endLat, Longitude: lng}

	var result models.SessionResult
	if err := c.post("/api/v1/sessions/stop", endFix, &result); err != nil {
		log.Fatal("Failed to stop session:", err)
	}
	log.Printf("Walk complete: %.3f km, %d steps in %ds", result.DistanceKm, result.Steps, result.DurationSecs)
}
