// Package processor executes a search task received by transport-layer and digests the result
package processor

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/leetie/minigrep/internal/matcher"
	"github.com/leetie/minigrep/internal/model"
)

type Processor struct{}

func (p Processor) ProcessTask(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
		Output: []string{},
	}

	select {
	case <-ctx.Done():
	default:
		// флаг insensitive инвертируется так же, как и в командной строке
		result.Output = matcher.Search(task.Query, task.Contents, task.LineNumbers, !task.Insensitive)
	}

	// считаем общий хеш
	result.HashSumm = Hasher(result.Output)

	return &result
}

// Hasher returns xxhash64 over the concatenated output lines
func Hasher(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
	}
	return hs.Sum64()
}
