/*
Package status reports where a note stands without touching the network.

	  note ──► embed.Discover ──► current embeds
	                                  │
	  rentryEmbedCache ──► Diff ◄─────┘
	                         │
	        ┌────────────────┼────────────────┐
	        ▼                ▼                ▼
	     cached            stale           pending
	 (mirrored, still   (mirrored, no    (embedded, not
	    embedded)       longer embedded)  yet mirrored)

🎯 Purpose:
- Show the paste a note is published to, if any
- Show which embeds a sync would upload or remove
- Flag an embed cache that no longer parses

A Report is built purely from the note and the local vault index, so
status is safe to run without credentials.
*/
package status
