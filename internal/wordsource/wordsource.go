// Package wordsource fetches named fill-in word sets from BigQuery.
//
// Puzzle word lists are published to a BigQuery table keyed by word-set name,
// so a request can reference a stored set instead of inlining every word.
package wordsource

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
)

// FetchParams identifies a stored word set.
type FetchParams struct {
	// Project is the GCP project hosting the word-set table.
	Project string
	// Table is the fully-qualified table, e.g. "proj.Fillin.word_sets".
	Table string
	// Set names the word set to fetch.
	Set string
	// Location is the BigQuery job location; defaults to "US".
	Location string
}

// Fetch returns every word of the named set, in table order.
func Fetch(ctx context.Context, p FetchParams) ([]string, error) {
	if p.Set == "" {
		return nil, fmt.Errorf("word set name must not be empty")
	}
	client, err := bigquery.NewClient(ctx, p.Project)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query(fmt.Sprintf("SELECT word FROM `%s` WHERE set_name = @set ORDER BY ordinal", p.Table))
	q.Parameters = []bigquery.QueryParameter{{Name: "set", Value: p.Set}}
	q.Location = p.Location
	if q.Location == "" {
		q.Location = "US"
	}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}
	return words, nil
}
