// Command prune-battle-index removes ids from battle_record:index whose
// record has expired or no longer decodes.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	battlerecord "github.com/KirkDiggler/rpg-battle/internal/repositories/battle_record"
)

// recordHeader is the minimum a stored battle result must decode to
type recordHeader struct {
	ID    string `json:"id"`
	Turns int    `json:"turns"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)

	checked, stale, err := findStale(ctx, client, os.Stdout)
	if err != nil {
		log.Fatal("Failed to read index:", err)
	}

	fmt.Printf("\nChecked %d index entries, found %d stale\n", checked, len(stale))
	if len(stale) == 0 {
		return
	}

	fmt.Print("\nRemove these entries from the index? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)
	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	removed := prune(ctx, client, stale, os.Stdout)
	fmt.Printf("\nRemoved %d of %d stale entries\n", removed, len(stale))
}

// findStale returns the number of index entries and the ids whose record is
// missing or undecodable
func findStale(ctx context.Context, client redis.Cmdable, w io.Writer) (int, []string, error) {
	ids, err := client.LRange(ctx, battlerecord.IndexKey, 0, -1).Result()
	if err != nil {
		return 0, nil, err
	}

	var stale []string
	for _, id := range ids {
		data, err := client.Get(ctx, battlerecord.RecordKey(id)).Result()
		if err == redis.Nil {
			stale = append(stale, id)
			continue
		}
		if err != nil {
			fmt.Fprintf(w, "Error reading %s: %v\n", id, err)
			continue
		}

		var header recordHeader
		if err := json.Unmarshal([]byte(data), &header); err != nil || header.ID != id {
			fmt.Fprintf(w, "✗ Undecodable record %s\n", id)
			stale = append(stale, id)
		}
	}
	return len(ids), stale, nil
}

// prune deletes each stale record and then its index entry. An entry whose
// record could not be deleted stays in the index so a rerun retries it.
func prune(ctx context.Context, client redis.Cmdable, stale []string, w io.Writer) int {
	removed := 0
	for _, id := range stale {
		if err := client.Del(ctx, battlerecord.RecordKey(id)).Err(); err != nil {
			fmt.Fprintf(w, "Failed to delete record %s: %v\n", id, err)
			continue
		}
		if err := client.LRem(ctx, battlerecord.IndexKey, 0, id).Err(); err != nil {
			fmt.Fprintf(w, "Failed to remove %s: %v\n", id, err)
			continue
		}
		fmt.Fprintf(w, "Removed %s\n", id)
		removed++
	}
	return removed
}
