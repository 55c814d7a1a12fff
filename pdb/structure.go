package pdb

import (
	"bufio"
	"io"
)

// Residue is a group of atoms with the same chain, residue number and
// insertion code. Index counts from zero in the order residues appear
// in the file. This is the numbering tleap uses (plus one).
type Residue struct {
	Name    string
	Index   int
	Chain   byte
	ResNum  int
	InsCode byte
	Atoms   []*Atom
	byName  map[string]*Atom
}

// Atom returns the atom with the given name. If there are alternate
// locations, the first one wins.
func (r *Residue) Atom(name string) (*Atom, bool) {
	a, ok := r.byName[name]
	return a, ok
}

func (r *Residue) addAtom(a *Atom) {
	r.Atoms = append(r.Atoms, a)
	if r.byName == nil {
		r.byName = make(map[string]*Atom)
	}
	if _, ok := r.byName[a.Name]; !ok {
		r.byName[a.Name] = a
	}
}

// sameRes says if an atom belongs to residue r
func (r *Residue) sameRes(a *Atom) bool {
	return r.Chain == a.Chain && r.ResNum == a.ResNum && r.InsCode == a.InsCode
}

// Structure is the residues from one file, in file order.
type Structure struct {
	Residues []*Residue
}

// add puts an atom into the last residue or starts a new one
func (s *Structure) add(a *Atom) {
	if n := len(s.Residues); n > 0 && s.Residues[n-1].sameRes(a) {
		s.Residues[n-1].addAtom(a)
		return
	}
	r := &Residue{
		Name:    a.ResName,
		Index:   len(s.Residues),
		Chain:   a.Chain,
		ResNum:  a.ResNum,
		InsCode: a.InsCode,
	}
	r.addAtom(a)
	s.Residues = append(s.Residues, r)
}

// Len is the number of residues
func (s *Structure) Len() int { return len(s.Residues) }

// Seq returns the residue names in order.
func (s *Structure) Seq() []string {
	seq := make([]string, len(s.Residues))
	for i, r := range s.Residues {
		seq[i] = r.Name
	}
	return seq
}

// NAtom counts atoms over all residues.
func (s *Structure) NAtom() (n int) {
	for _, r := range s.Residues {
		n += len(r.Atoms)
	}
	return n
}

// Dehydrogen removes hydrogen atoms. Residues which only had
// hydrogens are removed too and the residues are renumbered.
func (s *Structure) Dehydrogen() {
	var tmp Structure
	for _, r := range s.Residues {
		for _, a := range r.Atoms {
			if a.IsHydrogen() {
				continue
			}
			a.ResName = r.Name
			tmp.add(a)
		}
	}
	s.Residues = tmp.Residues
}

// SetName renames a residue and its atoms.
func (r *Residue) SetName(name string) {
	r.Name = name
	for _, a := range r.Atoms {
		a.ResName = name
	}
}

// Write writes the atom lines with the current residue names, a TER
// after each chain and END at the end.
func (s *Structure) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, r := range s.Residues {
		for _, a := range r.Atoms {
			bw.WriteString(a.withResName(r.Name))
			bw.WriteByte('\n')
		}
		if i == len(s.Residues)-1 || s.Residues[i+1].Chain != r.Chain {
			bw.WriteString("TER\n")
		}
	}
	bw.WriteString("END\n")
	return bw.Flush()
}
