// Package upload sends overlays to a video conference room.
//
// A room shows layers stacked by z-index. [Client.SendLayer] replaces the
// layer at a z-index with a new SVG; [Client.ClearLayer] removes it:
//
//	c := upload.NewClient(upload.WithBaseURL("https://api.eyeson.team"))
//	err := c.SendLayer(ctx, accessKey, []byte(layer.SVG()), 1)
//
// Transient failures (network errors, 5xx and 429 responses) are retried
// with exponential backoff.
//
// A [Deduper] remembers the hash of the last overlay sent to each room and
// z-index so that periodic re-renders of an unchanged scene cost no request.
package upload
