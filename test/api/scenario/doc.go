/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package scenario runs the Foody food review lifecycle as an explicit,
ordered list of steps.

Each step receives the shared client and a State carrying the identifier
of the last created review. Steps run strictly in slice order on a single
goroutine. A step whose dependencies did not pass is skipped rather than
run against stale state, while independent steps keep running.

	result, err := scenario.RunSuite(ctx, config)
	if err != nil {
		// authentication failed, no step ran
	}

	if !result.Passed() {
		return result.Err()
	}
*/
package scenario
