// Copyright 2016 Aaron Jacobs. All Rights Reserved.
// Author: aaronjjacobs@gmail.com (Aaron Jacobs)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

// An ordered string set is a set of strings that remembers the order in which
// elements were first added. It is not safe for concurrent use.
type OrderedStringSet interface {
	// Add the string, returning false if it was already present.
	Add(str string) bool

	Contains(str string) bool

	// Return the elements in the order they were first added.
	Elements() []string
}

// Create an empty set.
func NewOrderedStringSet() OrderedStringSet {
	return &orderedStringSet{
		index: make(map[string]bool),
	}
}

type orderedStringSet struct {
	index map[string]bool
	elems []string
}

func (s *orderedStringSet) Add(str string) bool {
	if s.index[str] {
		return false
	}

	s.index[str] = true
	s.elems = append(s.elems, str)

	return true
}

func (s *orderedStringSet) Contains(str string) bool {
	return s.index[str]
}

func (s *orderedStringSet) Elements() []string {
	return s.elems
}
