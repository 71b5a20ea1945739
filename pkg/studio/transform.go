package studio

import "github.com/shouni/gemini-image-studio/pkg/imgutil"

// 表示中の画像に対する変換。履歴には保存されません。

func (s *Session) Transform() imgutil.Transform {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transform
}

func (s *Session) Rotate() imgutil.Transform {
	return s.updateTransform(imgutil.Transform.Rotate)
}

func (s *Session) SetBrightness(percent int) imgutil.Transform {
	return s.updateTransform(func(t imgutil.Transform) imgutil.Transform { return t.WithBrightness(percent) })
}

func (s *Session) SetContrast(percent int) imgutil.Transform {
	return s.updateTransform(func(t imgutil.Transform) imgutil.Transform { return t.WithContrast(percent) })
}

func (s *Session) ToggleSepia() imgutil.Transform {
	return s.updateTransform(imgutil.Transform.ToggleSepia)
}

func (s *Session) ToggleGrayscale() imgutil.Transform {
	return s.updateTransform(imgutil.Transform.ToggleGrayscale)
}

func (s *Session) ResetTransform() imgutil.Transform {
	return s.updateTransform(func(imgutil.Transform) imgutil.Transform { return imgutil.Identity() })
}

func (s *Session) updateTransform(fn func(imgutil.Transform) imgutil.Transform) imgutil.Transform {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transform = fn(s.transform).Normalize()
	return s.transform
}
