// Licensed to the LF AI & Data foundation under one
// or more contributor license agreements. See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership. The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License. You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package typeutil

// Set is a set of comparable elements backed by a map.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set containing the given elements.
func NewSet[T comparable](elements ...T) Set[T] {
	set := make(Set[T], len(elements))
	set.Insert(elements...)
	return set
}

// Insert adds the given elements to the set.
func (set Set[T]) Insert(elements ...T) {
	for i := range elements {
		set[elements[i]] = struct{}{}
	}
}

// Contain returns true if the set contains all of the given elements.
func (set Set[T]) Contain(elements ...T) bool {
	for i := range elements {
		if _, ok := set[elements[i]]; !ok {
			return false
		}
	}
	return true
}

// Remove deletes the given elements from the set,
// does nothing for elements not in the set.
func (set Set[T]) Remove(elements ...T) {
	for i := range elements {
		delete(set, elements[i])
	}
}

// Collect returns the elements of the set as a slice,
// in unspecified order.
func (set Set[T]) Collect() []T {
	elements := make([]T, 0, len(set))
	for element := range set {
		elements = append(elements, element)
	}
	return elements
}

// Range iterates over the elements of the set,
// stopping early if f returns false.
func (set Set[T]) Range(f func(element T) bool) {
	for element := range set {
		if !f(element) {
			break
		}
	}
}

// Len returns the number of elements in the set.
func (set Set[T]) Len() int {
	return len(set)
}

// Clone returns a shallow copy of the set.
func (set Set[T]) Clone() Set[T] {
	ret := make(Set[T], set.Len())
	for elem := range set {
		ret.Insert(elem)
	}
	return ret
}
