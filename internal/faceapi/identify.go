package faceapi

import (
	"context"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// IdentifyFace identifies faceIDs against a trained person group. The ids are
// sent in batches of at most MaxIdentifyBatch, all batches concurrently. The
// merged results follow the order of faceIDs. Any failed batch fails the call.
func (c *Client) IdentifyFace(ctx context.Context, personGroupID string, faceIDs []string, opts IdentifyOptions) ([]IdentifyResult, error) {
	chunks := splitFaceIDs(faceIDs, MaxIdentifyBatch)
	if len(chunks) == 0 {
		return []IdentifyResult{}, nil
	}

	c.logger.Debug("identifying faces",
		zap.String("person_group_id", personGroupID),
		zap.Int("faces", len(faceIDs)),
		zap.Int("batches", len(chunks)),
	)

	// Siblings of a failed batch are left to finish; only the first error is kept.
	results := make([][]IdentifyResult, len(chunks))
	var g errgroup.Group
	for i, chunk := range chunks {
		g.Go(func() error {
			body := identifyRequest{
				PersonGroupID:              personGroupID,
				FaceIDs:                    chunk,
				ConfidenceThreshold:        opts.ConfidenceThreshold,
				MaxNumOfCandidatesReturned: opts.MaxCandidates,
			}
			res, err := doPostJSON[[]IdentifyResult](ctx, c, "identify", body)
			if err != nil {
				return err
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]IdentifyResult, 0, len(faceIDs))
	for _, res := range results {
		merged = append(merged, res...)
	}
	return merged, nil
}

// splitFaceIDs partitions ids into consecutive chunks of at most size
// elements. The input is not modified and the chunks do not share its
// backing array.
func splitFaceIDs(ids []string, size int) [][]string {
	if len(ids) == 0 || size <= 0 {
		return nil
	}
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for chunk := range slices.Chunk(ids, size) {
		chunks = append(chunks, slices.Clone(chunk))
	}
	return chunks
}
