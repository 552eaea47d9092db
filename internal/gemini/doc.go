// Package gemini provides the HTTP implementation of the
// domain.CalculationClient interface.
//
// Arithmetic is phrased as a natural-language instruction and posted to the
// generateContent endpoint; the first text part of the first candidate is
// parsed as the numeric answer. The credential travels in the
// x-goog-api-key header. Non-2xx statuses come back as *StatusError,
// non-numeric answers as ErrNotNumeric, and transport failures wrapped from
// the underlying http.Client.
package gemini
