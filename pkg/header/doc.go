// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package header provides the common resource header embedded in audit
// documents: kind, apiVersion, and free-form metadata following
// Kubernetes-style resource conventions.
//
// Header.Init stamps a resource with its kind, a UTC timestamp, a unique
// run id, and the producing tool's version, so exported documents are
// self-describing and individual runs are distinguishable in downstream
// storage.
package header
