package domain

import "strings"

// ImageReference identifies an image as registry/name:tag. It is opaque to the
// domain; syntax validation happens at the use case boundary.
type ImageReference string

// ContainerName is the deterministic name the managed container of an image gets.
type ContainerName string

// ContainerNameSuffix is appended to every derived container name.
const ContainerNameSuffix = "_container"

// ContainerNameFor derives the managed container name from an image reference:
//
//	: → _
//	/ → _
//	then "_container" is appended
//
// The transform must stay byte-for-byte stable so containers created by earlier
// sessions are found again.
func ContainerNameFor(ref ImageReference) ContainerName {
	name := strings.ReplaceAll(string(ref), ":", "_")
	name = strings.ReplaceAll(name, "/", "_")
	return ContainerName(name + ContainerNameSuffix)
}

func (r ImageReference) String() string { return string(r) }

func (n ContainerName) String() string { return string(n) }
