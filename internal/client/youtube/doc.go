// Package youtube provides a client for resolving playlist URLs
// into ordered lists of downloadable item descriptors.
// It wraps the platform metadata API and caches resolved playlists.
package youtube
