// Copyright 2025 walteh LLC
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

// Package curriculum knows how the three repositories a class is run from
// are laid out and how their folders relate to each other.
//
//	LESSON_PLANS_ROOT/
//	└── 23-Full-Time/              cohort (matches cohort_pattern)
//	    └── 13-Express/            module as named in the lesson plans
//	        └── 03-Day/            day
//	            └── 03-lesson-plan.md
//
//	CURRICULUM_ROOT/01-Class-Content/
//	└── 13-Express-Routing/        same module, found by its "13-" prefix
//	    ├── 01-Activities/
//	    └── 03-Algorithms/
//
//	CLASS_REPO_ROOT/
//	└── 13-Express-Routing/        copy of the curriculum module
//
// Folders are related only by their three-character numeric prefix, so the
// lesson plans and the curriculum may spell module names differently.
package curriculum
