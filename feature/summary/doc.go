// Package summary generates the post-refresh artifact: an 800x600 PNG card
// showing the total country count, the top five countries by estimated GDP,
// and the last refresh timestamp.
//
// Generation is invoked fire-and-forget by the refresh engine: failures are
// logged by the caller and never affect the refresh result. The rendered card is uploaded to object storage under a fixed key
// and served back through GET /countries/image.
package summary
