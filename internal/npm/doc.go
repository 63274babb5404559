// Package npm reads the two JSON inputs of an npm project, package.json and
// package-lock.json, preserving the document order of every object so that
// findings are reported in the order the files declare them.
//
// Loading never fails: LoadManifest and LoadLockfile return a Load whose
// Status tells the caller whether the file was present, absent or malformed.
package npm
