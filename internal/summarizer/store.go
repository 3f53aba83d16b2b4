// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package summarizer

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists posts and summary runs in Postgres.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Post is a row from the posts table.
type Post struct {
	ID   int    `json:"post_id"`
	Text string `json:"post_text"`
}

// LoadPosts returns every post for source ordered by id, so selection indices
// stay stable across runs over the same data.
func (s *Store) LoadPosts(ctx context.Context, source string) ([]Post, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT post_id, post_text FROM posts WHERE source = $1 ORDER BY post_id", source)
	if err != nil {
		return nil, fmt.Errorf("load posts for source %q: %w", source, err)
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Text); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreateRun inserts a summary_runs row and returns its id.
func (s *Store) CreateRun(ctx context.Context, description string) (int, error) {
	var runID int
	err := s.pool.QueryRow(ctx,
		"INSERT INTO summary_runs (description) VALUES ($1) RETURNING run_id", description).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("create run: %w", err)
	}
	return runID, nil
}

// SaveSelections records the selected posts of a run, ranked in the order
// they were returned (original post order).
func (s *Store) SaveSelections(ctx context.Context, runID int, posts []Post, selections []SelectedPost) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const insert = "INSERT INTO selected_posts (run_id, post_id, rank, weight) VALUES ($1, $2, $3, $4)"
	for rank, sel := range selections {
		if _, err := tx.Exec(ctx, insert, runID, posts[sel.Index].ID, rank+1, sel.Weight); err != nil {
			return fmt.Errorf("save selection for post %d: %w", posts[sel.Index].ID, err)
		}
	}
	return tx.Commit(ctx)
}
