//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/emergency-response-dashboard/internal/domain"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	flooded := flag.Int("flooded", 3, "how many districts get a sample water level")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	districts := domain.DefaultDistricts()
	payload := make([]domain.DistrictPayload, 0, len(districts))
	for i, d := range districts {
		if i < *flooded {
			d.WaterLevel = 0.8 * float64(i+1)
			d.Personnel = domain.PersonnelCount{SRR: 2 + i, Health: 1, Log: 1}
		}
		payload = append(payload, d.Payload())
	}

	event := domain.SimulationRequestEvent{
		RequestID: uuid.New(),
		Districts: payload,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamSimulationRequest,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamSimulationRequest)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Request ID: %s\n", event.RequestID)
	fmt.Printf("   Districts: %d\n", len(event.Districts))

	fmt.Printf("\nWaiting for response in %s...\n", domain.StreamSimulationDone)

	// mock симулятор сам по себе может идти до 20s
	timeout := time.After(60 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout waiting for response")
			return
		case <-ticker.C:
			results, err := client.XRead(ctx, &redis.XReadArgs{
				Streams: []string{domain.StreamSimulationDone, "0"},
				Count:   100,
				Block:   -1,
			}).Result()
			if err != nil {
				continue
			}

			for _, stream := range results {
				for _, msg := range stream.Messages {
					dataStr, ok := msg.Values["data"].(string)
					if !ok {
						continue
					}

					var done domain.SimulationDoneEvent
					if err := json.Unmarshal([]byte(dataStr), &done); err != nil {
						continue
					}

					if done.RequestID == event.RequestID {
						fmt.Printf("\nResponse received\n")
						prettyJSON, _ := json.MarshalIndent(done, "", "  ")
						fmt.Printf("%s\n", prettyJSON)
						return
					}
				}
			}
		}
	}
}
