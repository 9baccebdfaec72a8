// Package builder compiles URL-construction sequences into concrete URLs and
// checks that the results are well-formed.
//
// Given the sequence issuePrefix, "-", [0-9]+, ".", baseUrl with the base URL
// example.com and the ticket FOO-7, Build yields https://foo-7.example.com.
package builder
