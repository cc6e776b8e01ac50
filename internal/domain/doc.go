// Package domain contains the core business entities and value objects of
// the application: the submitted problem and the structured tutoring answer.
// It represents the heart of the system, independent of any specific
// infrastructure or delivery mechanism.
package domain
